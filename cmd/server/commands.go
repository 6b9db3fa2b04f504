package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/generation"
	"github.com/phrazzld/postcraft-api/internal/platform/gemini"
	"github.com/phrazzld/postcraft-api/internal/platform/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cliOptions holds flags that are not configuration keys.
type cliOptions struct {
	configFile string
	envFile    string
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"server.port":      "port",
	"server.log_level": "log-level",
	"llm.default_mode": "mode",
}

// newRootCommand builds the postcraft command tree. Running the root command
// without a subcommand starts the server.
func newRootCommand() *cobra.Command {
	return buildRootCommand(&cliOptions{}, viper.New())
}

func buildRootCommand(opts *cliOptions, v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "postcraft",
		Short:        "PostCraft API turns collected posts into reports and rephrasings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a YAML/JSON/TOML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file (ignored when missing)")
	flags.Int("port", 8000, "HTTP port to listen on")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("mode", "report", "Default generation mode: report or rephrase")

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, v)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Run one generation over stdin and print the result",
		Long: "Reads content from stdin, renders it with the selected mode's prompt, " +
			"sends it to the configured model and prints the generated text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, v)
		},
	})

	return root
}

// loadConfig resolves configuration from flags, environment, .env and config file.
func loadConfig(opts *cliOptions, v *viper.Viper) (*config.Config, error) {
	loadOpts := []config.Option{config.WithViper(v)}
	if opts.envFile != "" {
		loadOpts = append(loadOpts, config.WithDotEnv(opts.envFile))
	}
	if opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
	}

	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *cliOptions, v *viper.Viper) error {
	cfg, err := loadConfig(opts, v)
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"default_mode", cfg.LLM.DefaultMode,
		"strict_errors", cfg.Server.StrictErrors)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := newGenerator(ctx, cfg, l)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l, gen)
	if err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

func runGenerate(cmd *cobra.Command, opts *cliOptions, v *viper.Viper) error {
	cfg, err := loadConfig(opts, v)
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only the generated text.
	l := logger.New(cmd.ErrOrStderr(), cfg.Server.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gen, err := newGenerator(ctx, cfg, l)
	if err != nil {
		return err
	}

	return generateOnce(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, l, gen)
}

// generateOnce runs a single generation over everything read from in.
func generateOnce(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	cfg *config.Config,
	l *slog.Logger,
	gen generation.Generator,
) error {
	content, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	svc, err := generation.NewService(gen, cfg.LLM.ModelName, generation.Mode(cfg.LLM.DefaultMode),
		generation.WithLogger(l))
	if err != nil {
		return err
	}

	result, err := svc.Generate(ctx, "", string(content))
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, result.Text)
	return err
}

// newGenerator creates the shared Gemini-backed generator.
func newGenerator(ctx context.Context, cfg *config.Config, l *slog.Logger) (generation.Generator, error) {
	gen, err := gemini.NewGeminiGenerator(ctx, l.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	return gen, nil
}
