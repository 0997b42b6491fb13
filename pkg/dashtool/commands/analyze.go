// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/n9e/dashtool/pkg/dashtool/analyze"
	"github.com/n9e/dashtool/pkg/dashtool/convert"
)

// AnalyzeCommand converts dashboards and lists the metrics their queries use.
type AnalyzeCommand struct {
	files      []string
	outputFile string

	logConfig *LoggerConfig
	reg       prometheus.Registerer
}

func (c *AnalyzeCommand) Register(app *kingpin.Application, _ EnvVarNames, logConfig *LoggerConfig, reg prometheus.Registerer) {
	c.logConfig = logConfig
	c.reg = reg

	cmd := app.Command("analyze", "List the metrics used by Grafana dashboards once converted to N9E.").Action(c.run)
	cmd.Arg("files", "Grafana dashboard files to analyze.").Required().ExistingFilesVar(&c.files)
	cmd.Flag("output", "The path for the output file. Default STDOUT").StringVar(&c.outputFile)
}

func (c *AnalyzeCommand) run(_ *kingpin.ParseContext) error {
	logger := c.logConfig.Logger()

	output, err := AnalyzeDashboards(convert.New(nil, logger, c.reg), c.files, logger)
	if err != nil {
		// Report what could be analyzed anyway.
		level.Warn(logger).Log("msg", "some dashboards could not be analyzed", "err", err)
	}

	if c.outputFile == "" {
		return writeTo(os.Stdout, output, formatJSON)
	}
	return writeFile(c.outputFile, output, formatJSON)
}

// AnalyzeDashboards converts the given dashboard files and returns the metrics used in them.
func AnalyzeDashboards(conv *convert.Converter, files []string, logger log.Logger) (*analyze.MetricsInDashboards, error) {
	output := analyze.NewMetricsInDashboards()

	dashboards, err := convertAll(conv, files, logger)
	for i := range dashboards {
		analyze.ParseMetricsInDashboard(output, &dashboards[i], logger)
		level.Debug(logger).Log("msg", "analyzed dashboard", "result", output.Dashboards[len(output.Dashboards)-1])
	}
	output.Finish()

	return output, err
}
