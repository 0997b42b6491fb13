// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/multierror"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/n9e/dashtool/pkg/dashtool/convert"
	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
)

// ConvertCommand converts Grafana dashboard files into N9E dashboards.
type ConvertCommand struct {
	files     []string
	outputDir string
	format    string

	logConfig *LoggerConfig
	reg       prometheus.Registerer
	stdout    io.Writer
}

// Register the convert command and its flags with the kingpin application.
func (c *ConvertCommand) Register(app *kingpin.Application, _ EnvVarNames, logConfig *LoggerConfig, reg prometheus.Registerer) {
	c.logConfig = logConfig
	c.reg = reg
	c.stdout = os.Stdout

	cmd := app.Command("convert", "Convert Grafana dashboard JSON files into N9E dashboards.").Action(c.run)
	cmd.Arg("files", "Grafana dashboard files to convert.").Required().ExistingFilesVar(&c.files)
	cmd.Flag("output-dir", "Directory to write the converted dashboards to, one file per input. Required with more than one input; a single dashboard is written to stdout otherwise.").
		ExistingDirVar(&c.outputDir)
	cmd.Flag("format", "Output format. Valid formats: [json, yaml]").Default(formatJSON).EnumVar(&c.format, formatJSON, formatYAML)
}

func (c *ConvertCommand) run(_ *kingpin.ParseContext) error {
	if c.outputDir == "" && len(c.files) > 1 {
		return errors.New("--output-dir is required when converting more than one file")
	}
	return c.convertFiles(convert.New(nil, c.logConfig.Logger(), c.reg))
}

func (c *ConvertCommand) convertFiles(conv *convert.Converter) error {
	logger := c.logConfig.Logger()
	errs := multierror.New()
	// Output path to the input written there.
	written := map[string]string{}

	for _, file := range c.files {
		d, err := convertFile(conv, file)
		if err != nil {
			level.Error(logger).Log("msg", "could not convert dashboard", "file", file, "err", err)
			errs.Add(err)
			continue
		}

		if c.outputDir == "" {
			errs.Add(writeTo(c.stdout, d, c.format))
			continue
		}

		out := outputPath(c.outputDir, file, c.format)
		if prev, ok := written[out]; ok {
			err := errors.Errorf("%s and %s are both converted to %s", prev, file, out)
			level.Error(logger).Log("msg", "not overwriting converted dashboard", "file", file, "output", out, "err", err)
			errs.Add(err)
			continue
		}
		written[out] = file

		if err := writeFile(out, d, c.format); err != nil {
			errs.Add(err)
			continue
		}
		level.Info(logger).Log("msg", "converted dashboard", "file", file, "output", out, "name", d.Name)
	}

	return errs.Err()
}

func convertFile(conv *convert.Converter, file string) (dashboard.Dashboard, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	d, err := conv.ConvertJSON(buf)
	if err != nil {
		return dashboard.Dashboard{}, errors.Wrapf(err, "could not convert %s", file)
	}
	return d, nil
}

// convertAll converts files, skipping the ones that fail.
func convertAll(conv *convert.Converter, files []string, logger log.Logger) ([]dashboard.Dashboard, error) {
	errs := multierror.New()
	out := make([]dashboard.Dashboard, 0, len(files))
	for _, file := range files {
		d, err := convertFile(conv, file)
		if err != nil {
			level.Warn(logger).Log("msg", "skipping dashboard", "file", file, "err", err)
			errs.Add(err)
			continue
		}
		out = append(out, d)
	}
	return out, errs.Err()
}
