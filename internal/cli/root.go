package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/fuzzy"
	"github.com/alexanderramin/faqbot/internal/intelligence"
	"github.com/alexanderramin/faqbot/internal/llm"
	"github.com/alexanderramin/faqbot/internal/navigator"
	"github.com/spf13/cobra"
)

// App holds the components every command works against.
type App struct {
	Tree     *domain.Tree
	Resolver *navigator.Resolver
	Answers  *intelligence.AnswerService
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. nil means false.
	IsInteractive func() bool

	// Configure builds the fields above from the resolved configuration
	// before any command runs. nil leaves them as set.
	Configure func(cfg *config.Config) error
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "faqbot" command and registers all
// subcommands against the provided App. Without a subcommand it starts a
// chat session.
func NewRootCmd(app *App) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "faqbot",
		Short: "Menu-driven FAQ chatbot about Python",
		Long: `faqbot walks a fixed tree of questions about Python. Choose options by
number, by name or with approximate text; answers are expanded by a text
generation model when one is configured.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureApp(cmd, app, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/faqbot/config.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.Int("threshold", fuzzy.DefaultThreshold, "similarity an option must exceed to match (0-100)")
	pf.String("tree-file", "", "YAML catalog to use instead of the built-in one")
	pf.Bool("enrich", true, "expand answers with generated text")
	pf.String("provider", string(llm.ProviderHuggingFace), "generation backend (huggingface, ollama)")
	pf.String("model", "", "generation model (default depends on provider)")
	pf.Int("timeout-ms", llm.DefaultConfig().TimeoutMs, "generation timeout in milliseconds")

	root.AddCommand(
		newChatCmd(app),
		newTUICmd(app),
		newTreeCmd(app),
		newAskCmd(app),
	)

	return root
}

func configureApp(cmd *cobra.Command, app *App, cfgFile string) error {
	if app.Configure == nil {
		return nil
	}
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	return app.Configure(cfg)
}
