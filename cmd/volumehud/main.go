// volumehud — a transient terminal volume indicator.
//
// Usage:
//
//	volumehud [-config hud.yaml] [-system] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"volumehud/internal/config"
	"volumehud/internal/domain"
	"volumehud/internal/hud"
	"volumehud/internal/lifecycle"
	"volumehud/internal/logger"
	"volumehud/internal/tui"
	"volumehud/internal/volume"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", defaultConfigPath(), "path to the YAML config file")
	system := flag.Bool("system", false, "watch the OS mixer instead of keyboard control")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".volumehud.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Logs go to a file by default so the overlay stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Wire dependencies.
	hudCfg := buildHUDConfig(cfg.Overlay)
	surface := tui.NewSurface(log)
	viewport := tui.NewViewport(tui.TermSize())
	monitor := lifecycle.NewMonitor()

	var source domain.VolumeSource
	var manual *volume.Manual
	if *system || cfg.Volume.Source == "system" {
		source = volume.NewPoller(log, volume.WithInterval(cfg.Volume.PollInterval()))
		log.Info("watching the OS mixer (interval=%s)", cfg.Volume.PollInterval())
	} else {
		manual = volume.NewManual(0.5)
		source = manual
	}

	ctrl := hud.New(hudCfg, surface, source, monitor, log, hud.WithLayout(viewport))
	defer ctrl.Close()
	ctrl.AddObserver(hud.NewLogObserver(log))

	if err := ctrl.Start(); err != nil {
		// Non-fatal: the overlay still works, it just cannot see
		// hardware volume changes until the mixer comes back.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	program := tea.NewProgram(newApp(ctrl, surface, viewport, monitor, manual, log), tea.WithReportFocus())
	surface.SetSender(func(msg any) { program.Send(msg) })

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildHUDConfig maps the file configuration onto the overlay's validated
// runtime configuration.
func buildHUDConfig(o config.OverlayConfig) *hud.Config {
	cfg := hud.NewConfig()
	if o.Style == "fade" {
		cfg.SetAnimationStyle(domain.StyleFade)
	}
	// Values passed config.Validate, so these writes cannot fail.
	cfg.SetAnimationDuration(o.AnimationDuration())
	cfg.SetMinimumVisible(o.MinimumVisible())
	cfg.SetSegmentCount(o.Segments)
	cfg.SetSpacing(o.Spacing)
	cfg.SetBarHeight(o.BarHeight)
	cfg.SetTint(o.Tint)
	cfg.SetTrack(o.Track)
	cfg.SetBackground(o.Background)
	cfg.SetStatusBarHidden(o.StatusBarHidden)
	return cfg
}

func defaultConfigPath() string {
	if p := os.Getenv("VOLUMEHUD_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hud.yaml"
	}
	return filepath.Join(home, ".config", "volumehud", "hud.yaml")
}
