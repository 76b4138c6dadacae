package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhvani-labs/vartani/internal/config"
	"github.com/dhvani-labs/vartani/internal/connector"
	"github.com/dhvani-labs/vartani/internal/engine"
	"github.com/dhvani-labs/vartani/internal/engine/classifier"
	"github.com/dhvani-labs/vartani/internal/logging"
	"github.com/dhvani-labs/vartani/internal/output"
	"github.com/dhvani-labs/vartani/internal/output/async"
	csvout "github.com/dhvani-labs/vartani/internal/output/csv"
	"github.com/dhvani-labs/vartani/internal/output/multi"
	"github.com/dhvani-labs/vartani/internal/output/stdout"
	"github.com/dhvani-labs/vartani/internal/pipeline"
	"github.com/dhvani-labs/vartani/internal/report"
	"github.com/dhvani-labs/vartani/internal/vocab"

	// Register connector implementations.
	_ "github.com/dhvani-labs/vartani/internal/connector/manifest"
)

func main() {
	cfg := config.Load()

	if cfg.ShowVersion {
		fmt.Printf("vartani %s\n", config.Version)
		return
	}

	stdoutCarriesData := cfg.Output.Format == "stdout" || cfg.Output.Format == "both"
	logging.Init(stdoutCarriesData, logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load the reference vocabulary.
	v := vocab.Default()
	if cfg.Engine.VocabularyPath != "" {
		var err error
		v, err = vocab.LoadFile(cfg.Engine.VocabularyPath)
		if err != nil {
			slog.Error("failed to load vocabulary", "path", cfg.Engine.VocabularyPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("vocabulary loaded", "words", v.Len())

	// Build the engine.
	cls := classifier.New(v, cfg.Engine.MaxEditDistance)
	var engOpts []engine.Option
	if cfg.Engine.Workers > 0 {
		engOpts = append(engOpts, engine.WithWorkers(cfg.Engine.Workers))
	}
	eng := engine.New(cls, engOpts...)

	// Build the output.
	out, err := buildOutput(cfg)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}

	// Resolve the connector.
	ctor, err := connector.Get(cfg.Connector.Provider)
	if err != nil {
		slog.Error("failed to get connector", "provider", cfg.Connector.Provider, "error", err)
		os.Exit(1)
	}

	p := pipeline.New(ctor(), eng, out)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	connCfg := connector.Config{
		Provider: cfg.Connector.Provider,
		Path:     cfg.Connector.Path,
		Extra:    cfg.Connector.Extra,
	}

	slog.Info("starting", "mode", cfg.Mode, "connector", cfg.Connector.Provider, "manifest", cfg.Connector.Path)

	switch cfg.Mode {
	case "stream":
		err = p.Stream(ctx, connCfg)
		if closeErr := p.Close(); err == nil {
			err = closeErr
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("pipeline error", "error", err)
			os.Exit(1)
		}
		slog.Info("stream finished", "unique_words", eng.UniqueWords())
	default:
		results, runErr := p.Run(ctx, connCfg, connector.QueryParams{})
		err = runErr
		if closeErr := p.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			slog.Error("pipeline error", "error", err)
			os.Exit(1)
		}

		r := report.Build(results, cfg.Report.TargetCorpusSize, cfg.Report.ErrorRate)
		if err := report.Render(os.Stderr, r); err != nil {
			slog.Error("failed to render summary", "error", err)
			os.Exit(1)
		}
		if cfg.Output.Format != "stdout" {
			slog.Info("report written", "path", cfg.Output.Path, "words", r.WordsAnalyzed)
		}
	}
}

// buildOutput assembles the output stack for the configured format. Stream
// mode gets an async wrapper so slow sinks never stall segment processing.
func buildOutput(cfg config.Config) (output.Output, error) {
	var outputs []output.Output

	if cfg.Output.Format == "csv" || cfg.Output.Format == "both" {
		csvOut, err := csvout.New(cfg.Output.Path)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, csvOut)
	}
	if cfg.Output.Format == "stdout" || cfg.Output.Format == "both" {
		outputs = append(outputs, stdout.New(cfg.Output.Pretty))
	}

	var out output.Output
	if len(outputs) == 1 {
		out = outputs[0]
	} else {
		out = multi.New(outputs...)
	}

	if cfg.Mode == "stream" {
		out = async.New(out)
	}
	return out, nil
}
