package app

import (
	"keywatch/internal/config"
	"keywatch/internal/input"
	"keywatch/internal/logger"
	"keywatch/internal/monitoring"
	"keywatch/internal/tracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyWatchApp is the ebiten game driving the tracker: one source poll and one
// tracker update per tick, one full redraw per frame.
type KeyWatchApp struct {
	config  *config.Config
	source  input.Source
	tracker *tracker.Tracker
	monitor *monitoring.FrameMonitor
	ui      *UISystem
}

// NewKeyWatchApp creates the application reading events from source
func NewKeyWatchApp(cfg *config.Config, source input.Source) *KeyWatchApp {
	return &KeyWatchApp{
		config:  cfg,
		source:  source,
		tracker: tracker.New(),
		monitor: monitoring.NewFrameMonitor(),
		ui:      NewUISystem(cfg),
	}
}

// Update handles one frame of input
func (a *KeyWatchApp) Update() error {
	frameTimer := a.monitor.StartFrame()
	defer frameTimer.EndFrame()

	a.processFrame(a.source.Poll())
	return nil
}

func (a *KeyWatchApp) processFrame(events []tracker.Event) {
	a.monitor.RecordBatch(len(events))
	input.LogEvents(events)
	a.tracker.Process(events)
}

// Draw renders the current snapshot. ebiten redraws every frame, so the window
// never waits for a change.
func (a *KeyWatchApp) Draw(screen *ebiten.Image) {
	var stats *monitoring.FrameStats
	if a.config.UI.ShowStats {
		s := a.monitor.Stats()
		stats = &s
	}
	a.ui.Draw(screen, a.tracker.Snapshot(), stats)
}

// Layout returns the screen dimensions
func (a *KeyWatchApp) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.config.GetScreenWidth(), a.config.GetScreenHeight()
}

// Snapshot returns what the window currently shows.
func (a *KeyWatchApp) Snapshot() tracker.DisplayState {
	return a.tracker.Snapshot()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, source input.Source) error {
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	logger.Infof("Opening %q (%dx%d)", cfg.Display.WindowTitle, cfg.GetScreenWidth(), cfg.GetScreenHeight())
	return ebiten.RunGame(NewKeyWatchApp(cfg, source))
}
