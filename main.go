package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/andareed/teanotice/config"
	"github.com/andareed/teanotice/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	logFile    string
	duration   float64
	closable   bool
	portal     bool
)

var rootCmd = &cobra.Command{
	Use:     "teanotice [message]",
	Short:   "Show a transient, dismissible notice in the terminal",
	Long:    "Runs a small owner program around a single notice: it auto-closes, can be dismissed, and reports its close exactly once.",
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runDemo,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/teanotice/config.toml)")
	flags.StringVar(&logFile, "debug", "", "Write Debug Logs to file")
	flags.Float64Var(&duration, "duration", 0, "seconds before auto-close, 0 disables (overrides config)")
	flags.BoolVar(&closable, "closable", false, "show a close control (overrides config)")
	flags.BoolVar(&portal, "portal", false, "render the notice through an overlay layer instead of inside the panel")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer cleanup()

	log.Println("teanotice: Started")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	message := strings.Join(args, " ")
	if message == "" {
		message = "Hello from teanotice"
	}

	m := newModel(cfg, portal, message)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("duration") {
		cfg.Notice.Duration = duration
	}
	if cmd.Flags().Changed("closable") {
		cfg.Notice.Closable = closable
	}
	return cfg.Validate()
}
