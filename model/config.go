package model

type Config struct {
	ApplicationName     string   `json:"applicationName"`
	TerminationSignals  []string `json:"terminationSignals"`
	ExitCode            int      `json:"exitCode"`
	DrainTimeoutSeconds int      `json:"drainTimeoutSeconds"`
}
