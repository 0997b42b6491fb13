// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushGatewayConfig pushes the conversion metrics to a Prometheus push gateway when the tool exits.
type PushGatewayConfig struct {
	url string
	job string

	logConfig *LoggerConfig
	gatherer  prometheus.Gatherer
}

func (p *PushGatewayConfig) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig, gatherer prometheus.Gatherer) {
	p.logConfig = logConfig
	p.gatherer = gatherer

	app.Flag("push-gateway.url", "Push gateway to push the conversion metrics to, alternatively set $"+envVars.PushGatewayURL+". Metrics are not pushed if empty.").
		Envar(envVars.PushGatewayURL).
		Default("").
		StringVar(&p.url)
	app.Flag("push-gateway.job", "Job label of the pushed metrics, alternatively set $"+envVars.PushGatewayJob+".").
		Envar(envVars.PushGatewayJob).
		Default("dashtool").
		StringVar(&p.job)
}

// Stop pushes the metrics, if a push gateway is configured.
func (p *PushGatewayConfig) Stop() {
	if p.url == "" {
		return
	}

	logger := p.logConfig.Logger()
	if err := push.New(p.url, p.job).Gatherer(p.gatherer).Push(); err != nil {
		level.Error(logger).Log("msg", "could not push metrics to the push gateway", "url", p.url, "err", err)
		return
	}
	level.Debug(logger).Log("msg", "pushed metrics", "url", p.url)
}
