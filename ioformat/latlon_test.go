package ioformat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt-n/vroom/ioformat"
)

func TestParseLatLonQueryValid(t *testing.T) {
	locs, err := ioformat.ParseLatLonQuery("loc=0,0&loc=0,10&loc=10,10&loc=10,0")
	require.NoError(t, err)
	require.Len(t, locs, 4)
	require.Equal(t, 0.0, locs[0].X)
	require.Equal(t, 10.0, locs[1].Y)
	require.Equal(t, 0, locs[0].InputIndex)
	require.Equal(t, 3, locs[3].InputIndex)
}

func TestParseLatLonQuerySignedDecimals(t *testing.T) {
	locs, err := ioformat.ParseLatLonQuery("loc=-1.5,2.25&loc=3,-4.75")
	require.NoError(t, err)
	require.Equal(t, -1.5, locs[0].X)
	require.Equal(t, 2.25, locs[0].Y)
	require.Equal(t, -4.75, locs[1].Y)
}

func TestParseLatLonQueryRejectsMalformedRecord(t *testing.T) {
	_, err := ioformat.ParseLatLonQuery("loc=0,0&bogus&loc=1,1")
	var syntaxErr *ioformat.InvalidLocationSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, 2, syntaxErr.Position)
}

func TestParseLatLonQueryRejectsSingleLocation(t *testing.T) {
	_, err := ioformat.ParseLatLonQuery("loc=0,0")
	require.ErrorIs(t, err, ioformat.ErrEmptyProblem)
}
