package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gogeo/internal/app"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/internal/gui"
	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	uiFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "gogeo",
	Short: "Interactive 2D point and line editor",
	Long: `gogeo is a small interactive editor for points and infinite lines in the plane.
Place points, connect them with lines, drag lines around and intersect them.`,
	Version:       version.String(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config dir gogeo/config.yaml)")
	rootCmd.Flags().StringVar(&uiFlag, "ui", "", "frontend to use: raylib or fyne")
}

// loadConfig loads the configuration and installs the logger it describes
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("ui") {
		cfg.UI = strings.ToLower(strings.TrimSpace(uiFlag))
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	applog.Init(cfg.LogOptions())
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer applog.Close()

	switch cfg.UI {
	case config.UIFyne:
		return gui.Run(cfg)
	default:
		return app.Run(cfg, configPath)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
