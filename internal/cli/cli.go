package cli

import (
	"fmt"

	"keywatch/internal/config"
	"keywatch/internal/logger"

	"github.com/jessevdk/go-flags"
)

type CommandLineOpts struct {
	Config   string `short:"c" long:"config" description:"Configuration file (defaults to ./config.yaml when present)" value-name:"<file>"`
	LogLevel string `short:"l" long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level; debug logs every input event"`
	LogFile  string `long:"log-file" description:"Log to file instead of stderr" value-name:"<file>"`

	GuiCommand     GuiCommand     `command:"gui" description:"Open the KeyWatch window (default)"`
	ConsoleCommand ConsoleCommand `command:"console" description:"Print keyboard state to the terminal using the evdev backend"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version"`
}

var Opts CommandLineOpts

// Version is overridden at build time with -ldflags "-X keywatch/internal/cli.Version=..."
var Version = "dev"

// fatal reports a failed command and exits.
var fatal = logger.Fatal

// Execute is the parser's command handler. It runs command, or the window when
// no command was named, and logs a failure through fatal.
func Execute(command flags.Commander, args []string) error {
	if command == nil {
		command = &Opts.GuiCommand
	}
	if err := command.Execute(args); err != nil {
		fatal("keywatch failed", err)
	}
	return nil
}

// setup loads the configuration and applies the logging options. Command line
// values override the file.
func setup() (*config.Config, error) {
	var (
		cfg   *config.Config
		found = true
		err   error
	)
	if Opts.Config != "" {
		cfg, err = config.LoadConfig(Opts.Config)
	} else {
		cfg, found, err = config.LoadOrDefault(config.DefaultFile)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if Opts.LogLevel != "" {
		cfg.Logging.Level = Opts.LogLevel
	}
	if Opts.LogFile != "" {
		cfg.Logging.File = Opts.LogFile
	}

	logger.SetLevel(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		if err := logger.SetOutputFile(cfg.Logging.File); err != nil {
			return nil, err
		}
	}
	if !found {
		logger.Debugf("No %s found, using defaults", config.DefaultFile)
	}
	return cfg, nil
}

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("keywatch %s\n", Version)
	return nil
}
