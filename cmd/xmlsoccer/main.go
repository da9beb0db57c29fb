package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/xmlsoccer-import/external/xmlsoccer"
	"github.com/riskibarqy/xmlsoccer-import/internal/app"
	"github.com/riskibarqy/xmlsoccer-import/internal/config"
	"github.com/riskibarqy/xmlsoccer-import/internal/observability"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
	"github.com/riskibarqy/xmlsoccer-import/internal/usecase"
)

// Exit codes follow sysexits(3).
const (
	exitOK          = 0
	exitUsage       = 64
	exitDataErr     = 65
	exitUnavailable = 69
	exitIOErr       = 74
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := newCLI(os.Stdout, os.Stderr, config.Load)
	os.Exit(c.run(ctx, os.Args[1:]))
}

type cli struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)

	apiKey  string
	jsonOut bool

	cfg      config.Config
	logger   *logging.Logger
	app      *app.App
	shutdown []func(context.Context) error
}

func newCLI(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *cli {
	return &cli{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		logger:     logging.NewNop(),
	}
}

func (c *cli) run(ctx context.Context, args []string) int {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	err := root.ExecuteContext(ctx)
	c.close()
	if err != nil {
		fmt.Fprintf(c.stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "xmlsoccer",
		Short: "Import XMLSoccer data into the local database",
		Long: `xmlsoccer calls the XMLSoccer web service and stores leagues, teams,
players, groups, matches and goals in the local database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", "", "XMLSoccer api key (overrides XMLSOCCER_API_KEY)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		c.importLeaguesCmd(),
		c.showLeaguesCmd(),
		c.createLeagueCmd(),
		c.showGoalsCmd(),
		c.updateScoreCmd(),
		c.methodsCmd(),
		c.invokeCmd(),
	)
	return root
}

func (c *cli) setup(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return usageError{err}
	}
	c.cfg = cfg

	c.logger = logging.New(c.stderr, cfg.LogFormat, cfg.LogLevel)
	logging.SetDefault(c.logger)

	shutdownTracing, err := observability.InitUptrace(cfg, c.logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	c.shutdown = append(c.shutdown, shutdownTracing)

	stopProfiling, err := observability.InitPyroscope(cfg, c.logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	c.shutdown = append(c.shutdown, func(context.Context) error { return stopProfiling() })

	return ctx.Err()
}

// importer opens the app on first use; methods never needs it.
func (c *cli) importer(ctx context.Context) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := app.New(ctx, c.cfg, c.apiKey, c.logger)
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

func (c *cli) close() {
	if c.app != nil {
		if err := c.app.Close(); err != nil {
			c.logger.Warn("close app", "error", err)
		}
		c.app = nil
	}
	for i := len(c.shutdown) - 1; i >= 0; i-- {
		if err := c.shutdown[i](context.Background()); err != nil {
			c.logger.Warn("shutdown observability", "error", err)
		}
	}
	c.shutdown = nil
	_ = c.logger.Sync()
}

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usage),
		errors.Is(err, xmlsoccer.ErrInvalidConfig),
		errors.Is(err, xmlsoccer.ErrUnknownMethod):
		return exitUsage
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, xmlsoccer.ErrInvalidParameter):
		return exitDataErr
	case errors.Is(err, usecase.ErrDependencyUnavailable),
		xmlsoccer.KindOf(err).Throttled():
		return exitUnavailable
	default:
		return exitIOErr
	}
}
