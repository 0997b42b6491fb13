// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/n9e/dashtool/pkg/dashtool/commands"
	"github.com/n9e/dashtool/pkg/util/version"
)

var (
	analyzeCommand       commands.AnalyzeCommand
	convertCommand       commands.ConvertCommand
	grafanaImportCommand commands.GrafanaImportCommand
	logConfig            commands.LoggerConfig
	pushGateway          commands.PushGatewayConfig
)

func main() {
	app := kingpin.New("dashtool", "A command-line tool to import Grafana dashboards into Nightingale.")

	envVars := commands.NewEnvVarsWithPrefix("DASHTOOL")

	// Register logger first so its PreAction runs before others
	logConfig.Register(app)

	reg := prometheus.NewRegistry()
	reg.MustRegister(version.NewCollector("dashtool"))

	analyzeCommand.Register(app, envVars, &logConfig, reg)
	convertCommand.Register(app, envVars, &logConfig, reg)
	grafanaImportCommand.Register(app, envVars, &logConfig, reg)
	pushGateway.Register(app, envVars, &logConfig, reg)

	app.Command("version", "Get the version of the dashtool CLI").Action(func(*kingpin.ParseContext) error {
		fmt.Fprintln(os.Stdout, version.Print("dashtool"))
		return nil
	})

	kingpin.MustParse(app.Parse(os.Args[1:]))

	pushGateway.Stop()
}
