// Command tspsolve is the batch CLI front end: it reads a problem in one
// of two text formats, runs the two-phase solver, and writes a JSON
// result.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/krypt-n/vroom/ioformat"
	"github.com/krypt-n/vroom/solver"
)

var (
	flagInput     = flag.String("input", "", "raw lat/lon or TSPLIB input text")
	flagInputFile = flag.String("input-file", "", "read the input text from a file instead of -input")
	flagFormat    = flag.String("format", "auto", "input format: auto|latlon|tsplib")
	flagThreads   = flag.Int("threads", 0, "worker thread count (default: logical CPU count)")
	flagOutput    = flag.String("output", "-", "output path for the JSON result (- for stdout)")
	flagView      = flag.String("view", "route", "output view: route|tour")
	flagLogLevel  = flag.String("log-level", "info", "log level: debug|info|warn|error")
	flagConfig    = flag.String("config", "", "optional YAML config file providing defaults for the flags above")
)

func main() {
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var cfg Config
	if *flagConfig != "" {
		var err error
		cfg, err = loadConfig(*flagConfig)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tspsolve: reading config:", err)
			os.Exit(1)
		}
	}

	input := *flagInput
	if !explicit["input"] && cfg.Input != "" {
		input = cfg.Input
	}
	inputFile := *flagInputFile
	if !explicit["input-file"] && cfg.InputFile != "" {
		inputFile = cfg.InputFile
	}
	format := *flagFormat
	if !explicit["format"] && cfg.Format != "" {
		format = cfg.Format
	}
	threads := *flagThreads
	if !explicit["threads"] && cfg.Threads != 0 {
		threads = cfg.Threads
	}
	output := *flagOutput
	if !explicit["output"] && cfg.Output != "" {
		output = cfg.Output
	}
	view := *flagView
	if !explicit["view"] && cfg.View != "" {
		view = cfg.View
	}
	logLevel := *flagLogLevel
	if !explicit["log-level"] && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tspsolve: reading input file:", err)
			os.Exit(1)
		}
		input = string(data)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "tspsolve: -input or -input-file is required")
		os.Exit(1)
	}

	if threads <= 0 {
		threads = defaultThreads()
	}

	runID := uuid.New().String()

	logger, err := newLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspsolve: invalid -log-level:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", runID))

	started := time.Now()

	locs, err := ioformat.Load(input, format)
	if err != nil {
		logger.Error("failed to load problem", zap.Error(err))
		fmt.Fprintln(os.Stderr, "tspsolve:", err)
		os.Exit(1)
	}

	result, err := solver.Solve(locs, threads, logger)
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "tspsolve:", err)
		os.Exit(1)
	}

	doc, err := ioformat.BuildOutput(result.Tour, locs, result.Cost, result.Threads, runID, view, ioformat.Timing{
		MatrixBuildMS: float64(result.MatrixBuildTime.Microseconds()) / 1000,
		HeuristicMS:   float64(result.HeuristicTime.Microseconds()) / 1000,
		LocalSearchMS: float64(result.LocalSearchTime.Microseconds()) / 1000,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "tspsolve:", err)
		os.Exit(1)
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tspsolve: writing output:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := doc.Write(out); err != nil {
		fmt.Fprintln(os.Stderr, "tspsolve: encoding output:", err)
		os.Exit(1)
	}

	elapsed := time.Since(started)
	fmt.Fprintf(os.Stderr, "tspsolve: cost=%s n=%d threads=%d elapsed=%s\n",
		humanize.Comma(result.Cost), len(locs), result.Threads, elapsed.Round(time.Millisecond))
}

// defaultThreads reports the logical CPU count via gopsutil, falling back
// to runtime.NumCPU() if the syscall-backed probe errors.
func defaultThreads() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}
