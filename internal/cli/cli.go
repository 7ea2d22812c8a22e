package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lootgridgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Every flag is optional: a bare invocation reads Config/ beside the working
// directory and writes the report there.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lootgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
LootGridGo - Vehicle storage capacity extractor.

Usage:
  lootgridgo [options] [CONFIG_DIR]

Arguments:
  CONFIG_DIR
    Directory holding loot.xml and entityclasses.xml (default "Config").

Options:
`)
		flagSet.PrintDefaults()
	}

	configDirFlag := flagSet.String("config-dir", "", "Directory holding loot.xml and entityclasses.xml.")
	lootFlag := flagSet.String("loot", "", "Path to the loot container source. Overrides CONFIG_DIR/loot.xml.")
	entitiesFlag := flagSet.String("entities", "", "Path to the entity class source. Overrides CONFIG_DIR/entityclasses.xml.")
	outFlag := flagSet.String("out", app.DefaultOutputPath, "Path of the report file to write.")
	settingsFlag := flagSet.String("settings", "", "Optional HCL settings file or directory overriding built-in defaults.")
	strictFlag := flagSet.Bool("strict", false, "Abort when the entity source cannot be read or parsed.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	configDir := *configDirFlag
	if flagSet.NArg() == 1 {
		if configDir != "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("config directory given twice: -config-dir %q and argument %q", configDir, flagSet.Arg(0))}
		}
		configDir = flagSet.Arg(0)
	}
	slog.Debug("Config directory determined.", "path", configDir)

	config, err := app.NewConfig(app.Config{
		ConfigDir:    configDir,
		LootPath:     *lootFlag,
		EntitiesPath: *entitiesFlag,
		OutputPath:   *outFlag,
		SettingsPath: *settingsFlag,
		Strict:       *strictFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
