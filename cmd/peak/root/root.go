package root

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"peak/internal/config"
	"peak/internal/ui"
)

const Version = "0.1.0"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *log.Logger
	logFile    io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "peak",
		Short:         "Peak: local-first lifestyle tracker with XP and ranks",
		Long:          "Peak tracks hydration, study, vices and workouts, turning daily effort into XP, levels and ranks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	defaultConfig := os.Getenv("PEAK_CONFIG")
	if defaultConfig == "" {
		defaultConfig = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfig, "Path to the YAML config file")

	cmd.AddCommand(
		newStatusCmd(a),
		newWaterCmd(a),
		newStudyCmd(a),
		newViceCmd(a),
		newFocusCmd(a),
		newRanksCmd(a),
		newReefCmd(a),
		newCountdownCmd(a),
		newLogCmd(a),
		newCalendarCmd(a),
		newAnalyticsCmd(a),
		newBoardCmd(a),
		newUniCmd(a),
		newConfigCmd(a),
		newResetCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.LogFile == "" {
		a.logger = log.New(io.Discard, "", 0)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.logFile = f
	a.logger = log.New(f, "peak ", log.LstdFlags)
	return nil
}

func (a *app) teardown() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
