// SPDX-License-Identifier: AGPL-3.0-only

package commands

type EnvVarNames struct {
	GrafanaAddress string
	GrafanaAPIKey  string
	PushGatewayURL string
	PushGatewayJob string
}

func NewEnvVarsWithPrefix(prefix string) EnvVarNames {
	const (
		grafanaAddress = "GRAFANA_ADDRESS"
		grafanaAPIKey  = "GRAFANA_API_KEY"
		pushGatewayURL = "PUSHGATEWAY_URL"
		pushGatewayJob = "PUSHGATEWAY_JOB"
	)

	if len(prefix) > 0 && prefix[len(prefix)-1] != '_' {
		prefix = prefix + "_"
	}

	return EnvVarNames{
		GrafanaAddress: prefix + grafanaAddress,
		GrafanaAPIKey:  prefix + grafanaAPIKey,
		PushGatewayURL: prefix + pushGatewayURL,
		PushGatewayJob: prefix + pushGatewayJob,
	}
}
