package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/dimbata23/minischeme/pkg/config"
	"github.com/dimbata23/minischeme/pkg/history"
	"github.com/dimbata23/minischeme/pkg/interpreter"
	"github.com/dimbata23/minischeme/pkg/parser"
)

const continuationPrompt = "... "

// repl reads expressions until (exit) or end of input. Input that ends
// inside an expression is continued on the next line. store may be nil.
func repl(interp *interpreter.Interpreter, cfg *config.Config, logger *slog.Logger, store *history.Store) int {
	ctx := context.Background()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer(interp))

	var session *history.Session
	if store != nil {
		session = store.NewSession()
		recent, err := store.Recent(ctx, cfg.History.Limit)
		if err != nil {
			logger.Warn("loading history", slog.Any("error", err))
		}
		for _, input := range recent {
			line.AppendHistory(input)
		}
		logger.Debug("history session started", slog.String("session", session.ID), slog.Int("preloaded", len(recent)))
	}

	var pending strings.Builder
	for {
		prompt := cfg.Prompt
		if pending.Len() > 0 {
			prompt = continuationPrompt
		}

		text, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			pending.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(text)
		src := strings.TrimSpace(pending.String())
		if src == "" {
			pending.Reset()
			continue
		}
		if src == "(exit)" {
			return 0
		}

		out, err := interp.Run(src)
		if parser.IsIncomplete(err) {
			continue
		}
		pending.Reset()
		line.AppendHistory(src)

		if err != nil {
			printError(os.Stdout, err)
		} else {
			fmt.Println(out)
		}

		if session != nil {
			if rerr := session.Record(ctx, src, out, err); rerr != nil {
				logger.Warn("recording history", slog.Any("error", rerr))
			}
		}
	}
}

// completer completes the symbol under the cursor against the names bound
// in the root environment.
func completer(interp *interpreter.Interpreter) liner.Completer {
	return func(text string) []string {
		start := strings.LastIndexAny(text, " \t()'") + 1
		prefix := text[start:]
		if prefix == "" {
			return nil
		}

		var out []string
		for _, name := range interp.Names() {
			if strings.HasPrefix(name, prefix) {
				out = append(out, text[:start]+name)
			}
		}
		return out
	}
}
