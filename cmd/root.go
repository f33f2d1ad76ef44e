/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/emodice/internal/config"
	"github.com/suderio/emodice/internal/data"
	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/logging"
	"github.com/suderio/emodice/internal/minigames"
	"github.com/suderio/emodice/internal/rules"
	"github.com/suderio/emodice/internal/yahtzee"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "emodice",
	Short: "Emoji dice games collection",
	Long: `A collection of terminal dice games played with emoji faces:
Yahtzee plus seven quick games (simple roller, highest wins, target number,
skull survival, doubles, sequences and beat the house).

Run without a subcommand to pick a game from the menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(viper.GetViper())
		if err != nil {
			return err
		}
		defer a.Close()
		return runMenu(a, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.emodice.yaml)")
	flags.Uint64(config.KeySeed, 0, "seed for reproducible rolls (0 uses crypto randomness)")
	flags.Int("max-dice", dice.DefaultMaxDice, "largest number of dice in a single roll")
	flags.String("log-level", "", "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.String("log-file", "", "write logs to this file, rotated at 10 MB")
	flags.String("data-dir", "", "directory holding a games.yaml that overrides the built-in rules")

	cobra.CheckErr(viper.BindPFlag(config.KeySeed, flags.Lookup(config.KeySeed)))
	cobra.CheckErr(viper.BindPFlag(config.KeyMaxDice, flags.Lookup("max-dice")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogFile, flags.Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".emodice")
	}

	viper.SetEnvPrefix("EMODICE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// app is everything a command needs, built once from the configuration.
type app struct {
	cfg    config.Config
	log    *logrus.Logger
	closer io.Closer
	roller *dice.Roller
	games  *minigames.Engine
}

func newApp(v *viper.Viper) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return nil, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.WithField("file", used).Debug("config loaded")
	}

	manifest, err := data.NewLoader(cfg.DataDirs()).LoadManifest()
	if err != nil {
		closer.Close()
		return nil, err
	}
	reg, err := rules.NewRegistry()
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("failed to initialize rules: %w", err)
	}

	roller := dice.NewRoller(cfg.Source())
	games := minigames.New(roller, manifest, reg, cfg.MaxDice)
	if err := games.Validate(); err != nil {
		closer.Close()
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"max_dice": cfg.MaxDice,
		"ui":       cfg.UI,
		"seeded":   cfg.Seed != 0,
	}).Debug("engine ready")

	return &app{cfg: cfg, log: log, closer: closer, roller: roller, games: games}, nil
}

func (a *app) newSession() *yahtzee.Session {
	return yahtzee.NewSession(a.roller, a.log)
}

func (a *app) Close() error {
	return a.closer.Close()
}
