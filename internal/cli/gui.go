package cli

import (
	"fmt"

	"keywatch/internal/app"
	"keywatch/internal/input"
	"keywatch/internal/logger"
)

type GuiCommand struct {
	Backend string `short:"b" long:"backend" choice:"ebiten" choice:"evdev" description:"Where key events come from (overrides input.backend)"`
	Device  string `short:"d" long:"device" description:"evdev device path, e.g. /dev/input/event3" value-name:"<path>"`
	Stats   bool   `short:"s" long:"stats" description:"Show frame statistics in the window footer"`
}

func (command *GuiCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.CloseLogFile()

	if command.Backend != "" {
		cfg.Input.Backend = command.Backend
	}
	if command.Device != "" {
		cfg.Input.Device = command.Device
	}
	if command.Stats {
		cfg.UI.ShowStats = true
	}

	source, err := input.Open(cfg.Input.Backend, cfg.Input.Device)
	if err != nil {
		return fmt.Errorf("opening %s input: %w", cfg.Input.Backend, err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			logger.Error("closing input source", err)
		}
	}()

	logger.Infof("Using %s input backend", cfg.Input.Backend)
	return app.Run(cfg, source)
}
