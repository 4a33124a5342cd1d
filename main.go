package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/actions"
	"github.com/llehouerou/drawbar/internal/analytics"
	"github.com/llehouerou/drawbar/internal/app"
	"github.com/llehouerou/drawbar/internal/config"
	"github.com/llehouerou/drawbar/internal/dispatch"
	"github.com/llehouerou/drawbar/internal/errmsg"
	"github.com/llehouerou/drawbar/internal/export"
	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/logger"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/state"
	"github.com/llehouerou/drawbar/internal/store"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	log, logFile, err := logger.New(logger.Options{Level: cfg.LogLevel(), File: cfg.Log.File})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logFile.Close()

	// Open state manager
	var stateMgr state.Interface
	var prefs *state.Preferences
	var elements []scene.Element
	if cfg.PersistState() {
		mgr, err := state.Open()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
		}
		mgr.OnSaveError(func(err error) {
			log.Error("save preferences", "error", err)
		})
		defer mgr.Close()
		stateMgr = mgr

		if prefs, err = mgr.GetPreferences(); err != nil {
			log.Warn("load preferences", "error", err)
		}
		if elements, err = mgr.GetScene(); err != nil {
			log.Warn("load scene", "error", err)
		}
	}

	st := store.New(app.Restore(prefs, func(tool string) bool {
		return slices.Contains(actions.Tools, tool)
	}), elements)

	ctx := context.Background()
	provider, err := analytics.New(ctx, analytics.Config{
		Enabled:      cfg.Analytics.Enabled,
		OTLPEndpoint: cfg.Analytics.OTLPEndpoint,
		Insecure:     cfg.Analytics.Insecure,
	}, log)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer shutdown(provider, log)

	bindings := keymap.WithOverrides(keymap.Default, cfg.Keys)
	registry := actions.NewRegistry(keymap.NewResolver(bindings))
	mgr := dispatch.New(registry, st,
		dispatch.WithSink(provider.Sink()),
		dispatch.WithLogger(log),
	)

	m := app.New(app.Deps{
		Store:    st,
		Manager:  mgr,
		Bindings: bindings,
		Exporter: export.New(cfg.ExportDir()),
		State:    stateMgr,
		Logger:   log,
		Size:     toolbutton.Size(cfg.ToolbarSize()),
		Frame:    cfg.FrameInterval(),
	})
	defer m.Close()

	log.Info("starting", "size", cfg.ToolbarSize(), "persist", cfg.PersistState())
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}

	if stateMgr != nil {
		if err := stateMgr.SaveScene(st.Elements()); err != nil {
			log.Error("save scene", "error", err)
		}
	}
	return nil
}

func shutdown(p *analytics.Provider, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		log.Warn("analytics shutdown", "error", err)
	}
}
