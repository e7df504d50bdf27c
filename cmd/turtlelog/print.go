package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/turtlelog/internal/app"
	"github.com/five82/turtlelog/internal/classify"
)

func printCmd() *cobra.Command {
	var (
		stream string
		lines  int
	)

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a log file the way the viewer shows it",
		Long: `Print classifies the lines of FILE and writes the visible ones with the
viewer's colors. Daemon logs are scrubbed and ascii-art is dropped; wallet
backend logs are printed as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := classify.ParseStream(stream)
			if err != nil {
				return err
			}

			level := strings.TrimSpace(viper.GetString("log_level"))
			if level == "" {
				level = "warn"
			}
			slogLevel, err := app.ParseLevel(level)
			if err != nil {
				return err
			}
			if err := app.Print(cmd.OutOrStdout(), app.PrintOptions{
				Path:     args[0],
				Stream:   kind,
				MaxLines: lines,
				Dark:     !viper.GetBool("light"),
				Logger:   app.NewLogger(cmd.ErrOrStderr(), slogLevel),
			}); err != nil {
				return fmt.Errorf("print %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stream, "stream", string(classify.StreamDaemon), "stream the file belongs to (daemon, wallet-backend)")
	cmd.Flags().IntVar(&lines, "lines", 0, "only print the last N lines (0 prints everything)")

	return cmd
}
