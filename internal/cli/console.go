package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keywatch/internal/console"
	"keywatch/internal/input"
	"keywatch/internal/logger"

	"github.com/fatih/color"
)

type ConsoleCommand struct {
	Device    string `short:"d" long:"device" description:"evdev device path, e.g. /dev/input/event3" value-name:"<path>"`
	RefreshMs int    `short:"r" long:"refresh-ms" description:"Milliseconds between frames (overrides console.refresh_ms)"`
	NoColor   bool   `long:"no-color" description:"Disable colored output"`
	Append    bool   `long:"append" description:"Append frames instead of redrawing in place"`
}

func (command *ConsoleCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.CloseLogFile()

	if command.Device != "" {
		cfg.Input.Device = command.Device
	}
	if command.RefreshMs > 0 {
		cfg.Console.RefreshMs = command.RefreshMs
	}
	if command.NoColor || cfg.Console.NoColor {
		color.NoColor = true
	}

	// the terminal has no window to receive ebiten events
	source, err := input.Open(input.BackendEvdev, cfg.Input.Device)
	if err != nil {
		return fmt.Errorf("opening evdev input: %w", err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			logger.Error("closing input source", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := console.NewRenderer(color.Output, !command.Append)
	return console.Run(ctx, source, renderer, time.Duration(cfg.Console.RefreshMs)*time.Millisecond)
}
