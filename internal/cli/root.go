package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nsxfint/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "NSXFINT"

type rootOptions struct {
	Output  string
	Catalog string
	Debug   bool
	Verbose bool
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.WithLevel(zerolog.FatalLevel).Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := rootOptions{}
	cmd := &cobra.Command{
		Use:           "nsxfint [input]",
		Short:         "Identify NSX features in use per VM from a Usage Meter report",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig()
			setupLogging(
				resolveBool(cmd, opts.Debug, "debug", "debug"),
				resolveBool(cmd, opts.Verbose, "verbose", "verbose"),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "nsxfint.csv", "Output file (CSV) to write")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "Feature catalog override (YAML)")
	cmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging and keep intermediate artifacts")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("catalog", cmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newCatalogCommand())
	return cmd
}

func runRoot(cmd *cobra.Command, opts rootOptions, args []string) error {
	input := "vmh.tsv"
	if len(args) > 0 {
		input = args[0]
	}
	debug := resolveBool(cmd, opts.Debug, "debug", "debug")

	ctx := log.Logger.WithContext(cmd.Context())
	service := newAppService()
	result, err := service.Run(ctx, app.RunRequest{
		InputPath:     input,
		OutputPath:    resolveString(cmd, opts.Output, "output", "output"),
		CatalogPath:   resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		KeepArtifacts: debug,
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("vms", result.VMCount).
		Int("features", result.FeatureCount).
		Int("skipped_lines", result.SkippedLines).
		Str("output", result.OutputPath).
		Msg("report written")
	return nil
}

func newAppService() app.Service {
	return app.NewService()
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName("nsxfint")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/nsxfint")
	_ = viper.ReadInConfig()
}

// setupLogging routes leveled console output to stdout. Verbose runs
// log at debug level, debug runs at trace level.
func setupLogging(debug bool, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch {
	case debug:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps any failure to the tool's single failure exit
// status. The errbuilder code stays on the error for messaging; the
// process contract is 0 on success and 1 on any fatal condition.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
