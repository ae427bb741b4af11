// Package cmd implements the wordcounter command line.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/wordcounter"
	"github.com/iw2rmb/wordcounter/internal/app"
	"github.com/iw2rmb/wordcounter/internal/config"
	"github.com/iw2rmb/wordcounter/internal/logging"
)

// flagKeys binds command line flags to configuration keys.
var flagKeys = map[string]string{
	"target":     "target_word_count",
	"stylesheet": "stylesheet",
	"log-level":  "logging.level",
	"log-file":   "logging.file",
}

// NewRootCommand builds the wordcounter command tree around its own viper
// instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "wordcounter",
		Short: "Count words as you type",
		Long: `Wordcounter is a terminal text field that shows a live word count
and a progress bar toward a target word count.`,
		Version:       wordcounter.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWidget(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/wordcounter/wordcounter.yaml)")
	flags.IntP("target", "t", config.Default().TargetWordCount, "target word count")
	flags.String("stylesheet", "", "stylesheet YAML file (default is the built-in sheet)")
	flags.String("log-level", logging.LevelInfo, "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.Bool("no-color", false, "render without colors")

	rootCmd.Flags().Bool("no-vitals", false, "do not report startup vitals")
	rootCmd.Flags().Bool("alt-screen", false, "run in the alternate screen")

	rootCmd.AddCommand(newCountCommand(v))
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}

	cfgFile, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}

	if noColor, _ := flags.GetBool("no-color"); noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

func runWidget(cmd *cobra.Command, v *viper.Viper) error {
	if noVitals, _ := cmd.Flags().GetBool("no-vitals"); noVitals {
		v.Set("vitals.enabled", false)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	a := app.New(cfg, logger.Logger)
	a.AltScreen, _ = cmd.Flags().GetBool("alt-screen")

	res, err := a.Run(cmd.Context(), app.Mount{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	if err != nil {
		logger.Error("word counter failed", "error", err)
		return err
	}
	logger.Debug("final text", "words", res.WordCount)
	return nil
}
