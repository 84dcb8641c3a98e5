package runif

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCommand generates a new CLI running the classes of the main registry.
func NewCommand(
	name string,
	description string,
	version string,
) *cobra.Command {

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(name)
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	})

	var rootCmd = &cobra.Command{
		Use:   name,
		Short: description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return setLogger(viper.GetString("log-level"))
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version and exit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var cmdList = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered classes, checkers and preconditions.",
	}

	var cmdListClasses = &cobra.Command{
		Use:           "classes",
		Short:         "List registered classes and their methods.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := loadClasses(mainRegistry, NewSelection())
			if err != nil {
				return err
			}
			return listClasses(cmd.OutOrStdout(), classes)
		},
	}
	ExtendArgs(cmdListClasses)

	var cmdListRegistered = &cobra.Command{
		Use:           "checkers",
		Aliases:       []string{"preconditions"},
		Short:         "List registered checkers and preconditions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRegistered(cmd.OutOrStdout(), mainRegistry)
		},
	}

	cmdList.AddCommand(cmdListClasses, cmdListRegistered)

	var cmdRunTests = &cobra.Command{
		Use:           "test",
		Aliases:       []string{"run"},
		Short:         "Run the registered classes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg, err := NewConfig()
			if err != nil {
				return err
			}

			classes, err := loadClasses(mainRegistry, cfg.Selection)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Limit)
			defer cancel()

			return run(ctx, cmd, cfg, classes)
		},
	}

	ExtendArgs(cmdRunTests)
	cmdRunTests.Flags().BoolP("verbose", "V", false, "Show details even on success")
	cmdRunTests.Flags().DurationP("limit", "l", 20*time.Minute, "Execution time limit")
	cmdRunTests.Flags().Duration("timeout", 0, "Timeout of each test function, 0 for none")
	cmdRunTests.Flags().BoolP("stop-on-failure", "X", false, "Stop on the first failed test")
	cmdRunTests.Flags().String("metrics-addr", "", "Serve prometheus metrics on this address during the run")

	rootCmd.AddCommand(
		versionCmd,
		cmdList,
		cmdRunTests,
	)

	return rootCmd
}

func run(ctx context.Context, cmd *cobra.Command, cfg Config, classes []*Class) error {

	recorder := NewRecorder()
	notifiers := Notifiers{NewConsoleNotifier(cmd.OutOrStdout(), cfg.Verbose), recorder}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		notifiers = append(notifiers, NewMetricsNotifier(reg))

		server := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zap.L().Error("Unable to serve metrics", zap.String("addr", cfg.MetricsAddr), zap.Error(err))
			}
		}()
		defer server.Close() // nolint
	}

	logger := zap.L().With(zap.String("run-id", uuid.NewString()))
	logger.Info("Starting run", zap.Int("classes", len(classes)))

	runner := NewRunner(
		notifiers,
		OptionRegistry(mainRegistry),
		OptionHost(DefaultHost{Timeout: cfg.Timeout}),
		OptionLogger(logger),
		OptionStopOnFailure(cfg.StopOnFailure),
	)

	_, err := runner.Run(ctx, classes...)

	summary := recorder.Summary()
	PrintSummary(cmd.OutOrStdout(), summary)

	if err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d test(s) failed", summary.Failed)
	}

	return nil
}

// loadClasses applies the manifest if any, validates the
// registry and returns the selected classes.
func loadClasses(r *Registry, s Selection) ([]*Class, error) {

	if s.Manifest != "" {

		m, err := LoadManifest(s.Manifest)
		if err != nil {
			return nil, err
		}

		if err := m.Apply(r); err != nil {
			return nil, err
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return SelectClasses(r.Classes(), s.Classes, s.Methods, s.Tags, s.MatchAll), nil
}

func setLogger(level string) error {

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("unable to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// Execute runs the command and exits with status 1 on error.
func Execute(cmd *cobra.Command) {

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
