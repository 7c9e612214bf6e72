package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dimbata23/minischeme/pkg/config"
	"github.com/dimbata23/minischeme/pkg/history"
	"github.com/dimbata23/minischeme/pkg/interpreter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("minischeme", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file (default "+config.DefaultPath+" if present)")
	expr := flags.String("e", "", "evaluate one expression, print the result and exit")
	logLevel := flags.String("log-level", "", "override log_level (debug, info, warn, error)")
	noHistory := flags.Bool("no-history", false, "do not record the session")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	interp := interpreter.New(
		interpreter.WithLogger(logger),
		interpreter.WithMaxDepth(cfg.MaxDepth),
	)

	switch {
	case *expr != "":
		return runExpr(interp, *expr)
	case flags.NArg() > 0:
		return runFiles(interp, flags.Args())
	}

	var store *history.Store
	if cfg.History.Enabled && !*noHistory {
		store, err = history.Open(context.Background(), cfg.History.Path)
		if err != nil {
			logger.Warn("history disabled", slog.Any("error", err))
			store = nil
		} else {
			defer store.Close()
		}
	}
	return repl(interp, cfg, logger, store)
}

func runExpr(interp *interpreter.Interpreter, expr string) int {
	out, err := interp.Run(expr)
	if err != nil {
		printError(os.Stderr, err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func runFiles(interp *interpreter.Interpreter, paths []string) int {
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		results, err := interp.RunAll(string(src))
		for _, result := range results {
			fmt.Println(result)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: ", path)
			printError(os.Stderr, err)
			return 1
		}
	}
	return 0
}

// printError writes err; interpreter errors already carry their kind.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}
