package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"keywatch/internal/logger"

	"github.com/jessevdk/go-flags"
)

func withOpts(t *testing.T, opts CommandLineOpts) {
	t.Helper()
	saved := Opts
	Opts = opts
	t.Cleanup(func() {
		Opts = saved
		logger.CloseLogFile()
		logger.SetLevel("info")
	})
}

func TestSetupExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kw.yaml")
	body := "display:\n  window_title: Custom\nlogging:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	withOpts(t, CommandLineOpts{Config: path, LogLevel: "debug", LogFile: filepath.Join(dir, "kw.log")})

	cfg, err := setup()
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.Display.WindowTitle != "Custom" {
		t.Errorf("title = %q", cfg.Display.WindowTitle)
	}
	// flags override the file
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if _, err := os.Stat(filepath.Join(dir, "kw.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestSetupMissingExplicitConfig(t *testing.T) {
	withOpts(t, CommandLineOpts{Config: filepath.Join(t.TempDir(), "nope.yaml")})
	if _, err := setup(); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestParseCommands(t *testing.T) {
	var opts CommandLineOpts
	parser := flags.NewParser(&opts, flags.None)
	parser.SubcommandsOptional = true

	// stop before Execute runs
	parser.CommandHandler = func(command flags.Commander, args []string) error { return nil }

	if _, err := parser.ParseArgs([]string{"-l", "debug", "gui", "--backend", "evdev", "-d", "/dev/input/event2", "--stats"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.LogLevel != "debug" || opts.GuiCommand.Backend != "evdev" || opts.GuiCommand.Device != "/dev/input/event2" || !opts.GuiCommand.Stats {
		t.Errorf("opts = %+v", opts)
	}
	if parser.Active == nil || parser.Active.Name != "gui" {
		t.Errorf("active command = %v", parser.Active)
	}

	if _, err := parser.ParseArgs([]string{"gui", "--backend", "sdl"}); err == nil {
		t.Error("expected error for invalid backend choice")
	}
}

type failingCommand struct{ err error }

func (c failingCommand) Execute(args []string) error { return c.err }

func TestExecuteReportsFailure(t *testing.T) {
	saved := fatal
	defer func() { fatal = saved }()

	var reported error
	fatal = func(msg string, err error) { reported = err }

	boom := errors.New("no display")
	if err := Execute(failingCommand{err: boom}, nil); err != nil {
		t.Fatalf("Execute returned %v", err)
	}
	if !errors.Is(reported, boom) {
		t.Errorf("reported %v, want %v", reported, boom)
	}

	reported = nil
	if err := Execute(&VersionCommand{}, nil); err != nil || reported != nil {
		t.Errorf("version: err %v, reported %v", err, reported)
	}
}

func TestExecuteFromParser(t *testing.T) {
	saved := fatal
	defer func() { fatal = saved }()

	var reported error
	fatal = func(msg string, err error) { reported = err }
	withOpts(t, CommandLineOpts{})

	parser := flags.NewParser(&Opts, flags.None)
	parser.SubcommandsOptional = true
	parser.CommandHandler = Execute

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := parser.ParseArgs([]string{"-c", missing, "console"}); err != nil {
		t.Fatalf("ParseArgs returned %v", err)
	}
	if reported == nil {
		t.Error("console failure was not reported")
	}
}
