// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	dslog "github.com/grafana/dskit/log"
	"github.com/pkg/errors"
)

// LoggerConfig is the logging configuration shared by all commands.
type LoggerConfig struct {
	level  string
	format string

	logger log.Logger
}

// Register the log flags. It must be called before registering the commands,
// so that the logger is built before any command action runs.
func (l *LoggerConfig) Register(app *kingpin.Application) {
	app.Flag("log.level", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]").
		Default("info").
		EnumVar(&l.level, "debug", "info", "warn", "error")
	app.Flag("log.format", "Output log messages in the given format. Valid formats: [logfmt, json]").
		Default(dslog.LogfmtFormat).
		EnumVar(&l.format, dslog.LogfmtFormat, dslog.JSONFormat)

	app.PreAction(l.setup)
}

func (l *LoggerConfig) setup(_ *kingpin.ParseContext) error {
	var lvl dslog.Level
	if err := lvl.Set(l.level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	l.logger = log.With(dslog.NewGoKitWithLevel(lvl, l.format), "ts", log.DefaultTimestampUTC)
	return nil
}

// Logger returns the configured logger, or a no-op logger if flags were not parsed yet.
func (l *LoggerConfig) Logger() log.Logger {
	if l.logger == nil {
		return log.NewNopLogger()
	}
	return l.logger
}
