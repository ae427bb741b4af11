package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/wordcounter/display"
	"github.com/iw2rmb/wordcounter/internal/config"
	"github.com/iw2rmb/wordcounter/wordcount"
)

func newCountCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file|-]",
		Short: "Print the word count and progress of a file",
		Long: `Count reads a file, or standard input when the argument is "-" or
missing, and prints its word count and progress toward the target.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			words := wordcount.Count(text)
			pct := wordcount.Percentage(wordcount.Progress(words, cfg.TargetWordCount))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Word count: %d\n", words)
			fmt.Fprintf(out, "Progress: %s%%\n", display.FormatPercentage(pct))
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
