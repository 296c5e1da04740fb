package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/faqbot/internal/catalog"
	"github.com/alexanderramin/faqbot/internal/cli"
	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/intelligence"
	"github.com/alexanderramin/faqbot/internal/llm"
	"github.com/alexanderramin/faqbot/internal/navigator"
	"github.com/alexanderramin/faqbot/internal/textproc"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{}

	// Detect interactive terminal so the banner is only shown to people.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Configure = func(cfg *config.Config) error {
		return wire(app, cfg)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// wire builds the tree, resolver and answer composer from cfg.
func wire(app *cli.App, cfg *config.Config) error {
	logger, err := config.NewLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	var tree *domain.Tree
	if cfg.TreePath != "" {
		tree, err = catalog.LoadFile(cfg.TreePath)
	} else {
		tree, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("loading FAQ tree: %w", err)
	}

	// The vocabulary covers every label and answer plus the words typed at
	// the prompts, so spelling correction never rewrites them.
	words := append(tree.Texts(), navigator.KeywordExit, navigator.KeywordBack, "sim", "nao")
	pipeline := textproc.NewPipeline(textproc.NewVocabulary(words...))

	// Wire generation only when enabled; a nil generator keeps answers canned.
	var gen intelligence.Generator
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(logger)
		}
		client, err := llm.NewClient(cfg.LLM, observer)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
		gen = llm.NewGenerator(client)
	}

	app.Logger = logger
	app.Tree = tree
	app.Resolver = navigator.NewResolver(pipeline,
		navigator.WithThreshold(cfg.MatchThreshold),
		navigator.WithLogger(logger),
	)
	app.Answers = intelligence.NewAnswerService(gen,
		intelligence.WithMaxTokens(cfg.LLM.MaxTokens),
		intelligence.WithAnswerLogger(logger),
	)
	return nil
}
