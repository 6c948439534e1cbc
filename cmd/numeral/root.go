package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/csheth/numeral/internal/config"
	"github.com/csheth/numeral/internal/convert"
	"github.com/csheth/numeral/internal/logging"
	"github.com/csheth/numeral/internal/server"
	"github.com/csheth/numeral/internal/theme"
	"github.com/csheth/numeral/internal/tui"
	"github.com/csheth/numeral/internal/validate"
)

var version = "0.1.0"

type options struct {
	configPath  string
	endpoint    string
	queryParam  string
	timeout     time.Duration
	themeName   string
	logFile     string
	listen      string
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "numeral",
		Short: "Convert numbers to Roman numerals",
		Long: `numeral is a small terminal form: type a number between 1 and 3999,
press Enter, and the conversion service answers with its Roman numeral.

Examples:
  numeral                                   # Start the form
  numeral --endpoint http://host/romannumeral
  numeral convert 1994                      # Convert once and print
  numeral serve --listen :8080              # Run a local conversion service`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.endpoint, "endpoint", config.DefaultEndpoint, "conversion service URL")
	pf.StringVar(&opts.queryParam, "query-param", config.DefaultQueryParam, "query parameter carrying the number")
	pf.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "conversion request timeout")
	pf.StringVar(&opts.logFile, "log-file", "", "append JSON logs to this file")

	root.Flags().StringVar(&opts.themeName, "theme", config.DefaultTheme, "color scheme: auto, light or dark")
	root.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	root.AddCommand(newConvertCmd(opts), newServeCmd(opts))
	return root
}

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a single number and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			res := validate.Validate(args[0])
			if !res.Valid() {
				if err := res.Err(); err != nil {
					return err
				}
				return errors.New("no number given")
			}

			logger, closeLog, err := openLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog.Close()

			client := newClient(cfg, logger)
			out, err := client.Convert(cmd.Context(), res.Value)
			if err != nil {
				return errors.New(convert.UserMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local conversion service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&opts.listen, "listen", config.DefaultListen, "address to listen on")
	return cmd
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = opts.endpoint
	}
	if flags.Changed("query-param") {
		cfg.QueryParam = opts.queryParam
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = strings.ToLower(opts.themeName)
	}
	if flags.Lookup("listen") != nil && flags.Changed("listen") {
		cfg.Listen = opts.listen
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openLogger(path string) (*logging.Harbour, io.Closer, error) {
	if path == "" {
		return logging.New(io.Discard), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newClient(cfg config.Config, logger *logging.Harbour) *convert.HTTPClient {
	return convert.New(convert.Config{
		Endpoint:   cfg.Endpoint,
		QueryParam: cfg.QueryParam,
		Timeout:    cfg.Timeout,
	}, logger.WithModule("convert"))
}

func runForm(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	initial, err := theme.Resolve(cfg.Theme, theme.Detect)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	programOpts := []tea.ProgramOption{}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client: newClient(cfg, logger),
			Logger: logger.WithModule("form"),
			Theme:  initial,
		}),
		programOpts...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runServer(parent context.Context, cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	logger := logging.New(os.Stderr).WithModule("server")
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.New(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", map[string]any{"addr": cfg.Listen})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
