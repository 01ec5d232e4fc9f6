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

	"chebi-leaves/internal/adapters"
	"chebi-leaves/internal/app"
	"chebi-leaves/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CHEBI_LEAVES"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Endpoint   string
	TimeoutSec int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "chebi-leaves",
		Short:   "Flatten ChEBI ontology branches into leaf molecules with SMILES",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", adapters.DefaultChEBIEndpoint, "ChEBI web service base URL")
	cmd.PersistentFlags().IntVar(&cfg.TimeoutSec, "timeout", 60, "HTTP timeout in seconds (0 = default)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("endpoint", cmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("timeout_sec", cmd.PersistentFlags().Lookup("timeout"))

	cmd.AddCommand(newLeavesCommand())
	cmd.AddCommand(newChildrenCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("chebi-leaves")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/chebi-leaves")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() app.Service {
	return app.NewService(viper.GetString("endpoint"), viper.GetInt("timeout_sec"))
}

func exitCodeForError(err error) int {
	var invalidID *types.InvalidIdentifierError
	var remote *types.RemoteServiceError
	var malformed *types.MalformedResponseError
	switch {
	case errors.As(err, &invalidID):
		return 2
	case errors.As(err, &remote):
		return 3
	case errors.As(err, &malformed):
		return 4
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
