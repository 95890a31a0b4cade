package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tintz/tintz/internal/app"
	"github.com/tintz/tintz/internal/config"
	"github.com/tintz/tintz/internal/logging"
	"github.com/tintz/tintz/internal/state"
	"github.com/tintz/tintz/internal/styles"
	"github.com/tintz/tintz/internal/theme"
	"github.com/tintz/tintz/internal/ui"
)

var version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Tintz - a light/dark theme manager with a terminal preview

Usage: tintz [options]

Options:
  -config string
        Path to config file (default: ~/.config/tintz/config.toml)
  -theme string
        Start with this theme (light, dark); overrides config and saved state
  -list-themes
        Print available theme names and exit
  -print-style string
        Resolve a named style against the active theme, print it, and exit
  -version
        Print version and exit

Examples:
  tintz                                # Start the interactive preview
  tintz -theme dark                    # Start in the dark theme
  tintz -print-style Header.TLabel     # Show a resolved style

`)
	}

	cfgPath := flag.String("config", "", "")
	themeName := flag.String("theme", "", "")
	listThemes := flag.Bool("list-themes", false, "")
	printStyle := flag.String("print-style", "", "")
	showVersion := flag.Bool("version", false, "")
	flag.Parse()

	if *showVersion {
		fmt.Println("tintz", version)
		return
	}

	if *listThemes {
		fmt.Println(strings.Join(theme.Names(), "\n"))
		return
	}

	cfg, resolvedPath, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logger, logFile, err := logging.Setup()
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	defer logFile.Close()
	logger.Info("starting tintz", slog.String("config", resolvedPath))

	var store *state.Store
	if cfg.State.Persist {
		store, err = state.NewStore(cfg.State.Path)
		if err != nil {
			logger.Error("open state store", slog.Any("err", err))
			log.Fatalf("open state store: %v", err)
		}
		defer store.Close()
	}

	engine := ui.NewEngine()
	manager := theme.NewManager(engine)
	manager.SetCurrent(startupTheme(cfg, store, *themeName, logger))

	if err := manager.Setup(); err != nil {
		logger.Error("setup themes", slog.Any("err", err))
		log.Fatalf("setup themes: %v", err)
	}
	appStyles := styles.New(manager, engine)
	if err := appStyles.Setup(); err != nil {
		logger.Error("setup styles", slog.Any("err", err))
		log.Fatalf("setup styles: %v", err)
	}

	if *printStyle != "" {
		props, err := appStyles.Lookup(*printStyle)
		if err != nil {
			log.Fatalf("resolve style: %v", err)
		}
		if props == nil {
			fmt.Fprintf(os.Stderr, "unknown style: %s\n", *printStyle)
			os.Exit(1)
		}
		fmt.Printf("%s (%s): %v\n", *printStyle, manager.CurrentTheme().Name, props)
		return
	}

	m := app.New(cfg, manager, appStyles, engine, store, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("run app", slog.Any("err", err))
		log.Fatalf("run app: %v", err)
	}
}

// startupTheme picks the initial theme: -theme flag, then persisted
// state, then config.
func startupTheme(cfg *config.Config, store *state.Store, flagTheme string, logger *slog.Logger) string {
	if flagTheme != "" {
		if !theme.Valid(flagTheme) {
			log.Fatalf("unknown theme: %s", flagTheme)
		}
		return flagTheme
	}
	if store != nil {
		result, err := store.Load(context.Background())
		if err != nil {
			logger.Warn("load theme state", slog.Any("err", err))
		} else if theme.Valid(result.Theme) {
			logger.Info("restored theme", slog.String("theme", result.Theme))
			return result.Theme
		}
	}
	return cfg.UI.Theme
}
