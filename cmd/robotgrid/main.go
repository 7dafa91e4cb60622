package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"robotgrid/internal/coordinator"
	"robotgrid/internal/logging"
	"robotgrid/internal/render"
	"robotgrid/internal/report"
)

var (
	colors  = flag.Bool("color", true, "Color the result tags")
	summary = flag.Bool("summary", false, "Print a summary line after the results")
	verbose = flag.Bool("verbose", false, "Log every step to stderr")
	trace   = flag.Bool("trace", false, "Replay every scenario on the terminal before printing results")
	delay   = flag.Duration("delay", 200*time.Millisecond, "Pause between replayed steps")
)

type options struct {
	colors  bool
	summary bool
	trace   bool
	delay   time.Duration
}

// newScreen is swapped out in tests.
var newScreen = func() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <instruction file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("No filename supplied for processing.")
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.NewLogger(os.Stderr, logging.Level(*verbose))
	defer logger.Sync()

	opts := options{colors: *colors, summary: *summary, trace: *trace, delay: *delay}
	if err := run(flag.Arg(0), opts, os.Stdout, logger); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run parses the whole file before running anything; on error nothing is
// printed to out.
func run(path string, opts options, out io.Writer, logger *zap.SugaredLogger) error {
	coord := coordinator.New(logger)

	lines, err := coordinator.LoadLines(path)
	if err != nil {
		return err
	}
	set, err := coord.Parse(lines)
	if err != nil {
		return err
	}

	var results coordinator.Results
	if opts.trace {
		screen, err := newScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		results = coord.Run(set, render.NewDisplay(screen, set.Grid, opts.delay))
		screen.Fini()
	} else {
		results = coord.Run(set)
	}

	rep := report.New(opts.colors)
	if err := rep.Write(out, results); err != nil {
		return err
	}
	if opts.summary {
		return rep.WriteSummary(out, results)
	}
	return nil
}
