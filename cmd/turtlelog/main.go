package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/turtlelog/internal/app"
	"github.com/five82/turtlelog/internal/config"
	"github.com/five82/turtlelog/internal/prefs"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "turtlelog",
		Short: "Live viewer for TurtleCoin wallet and daemon logs",
		Long: `turtlelog follows the wallet backend log and the TurtleCoind output in a
terminal UI. Daemon lines are cleaned up and colored, ascii-art banners are
hidden, and project links can be opened in the browser.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
		RunE:              runTUI,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/turtlelog/config.toml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("light", false, "use the light theme")

	local := rootCmd.Flags()
	local.String("prefs", prefs.DefaultPath(), "preferences file")
	local.String("daemon-log", "", "TurtleCoind log file")
	local.String("daemon-unit", "", "systemd unit to follow instead of the daemon log file")
	local.String("backend-log", "", "wallet-backend log file")
	local.Int("max-lines", 0, "lines kept per log")
	local.String("log-file", "", "where turtlelog writes its own log")

	// Bind flags to viper
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("light", flags.Lookup("light"))
	_ = viper.BindPFlag("prefs", local.Lookup("prefs"))
	_ = viper.BindPFlag("daemon_log", local.Lookup("daemon-log"))
	_ = viper.BindPFlag("daemon_unit", local.Lookup("daemon-unit"))
	_ = viper.BindPFlag("backend_log", local.Lookup("backend-log"))
	_ = viper.BindPFlag("max_lines", local.Lookup("max-lines"))
	_ = viper.BindPFlag("log_file", local.Lookup("log-file"))

	rootCmd.AddCommand(printCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "turtlelog: %v\n", err)
		os.Exit(1)
	}
}

// initConfig lets TURTLELOG_* environment variables stand in for flags.
func initConfig(_ *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("TURTLELOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), app.Options{
		ConfigPath: viper.GetString("config"),
		PrefsPath:  viper.GetString("prefs"),
		Overrides:  overridesFromViper(),
		Light:      viper.GetBool("light"),
	})
}

// overridesFromViper collects flag and environment values. Unset keys stay
// zero and leave the config file in charge.
func overridesFromViper() config.Overrides {
	return config.Overrides{
		DaemonLog:  viper.GetString("daemon_log"),
		DaemonUnit: viper.GetString("daemon_unit"),
		BackendLog: viper.GetString("backend_log"),
		MaxLines:   viper.GetInt("max_lines"),
		LogFile:    viper.GetString("log_file"),
		LogLevel:   viper.GetString("log_level"),
	}
}
