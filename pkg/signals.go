package pkg

import (
	"os"
	"strings"
	"syscall"

	"github.com/LerianStudio/lib-shutdown-go/constant"
)

// signalsByName maps the signal names accepted in configuration to their
// os.Signal values. Only signals that can be trapped are listed.
var signalsByName = map[string]os.Signal{
	"SIGINT":  syscall.SIGINT,
	"SIGTERM": syscall.SIGTERM,
	"SIGHUP":  syscall.SIGHUP,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGUSR1": syscall.SIGUSR1,
	"SIGUSR2": syscall.SIGUSR2,
}

// ParseSignalNames splits the comma-separated signal names string into a slice
func ParseSignalNames(signalsStr string) []string {
	if signalsStr == "" {
		return []string{}
	}

	// Split by comma, trim spaces and normalize case
	names := strings.Split(signalsStr, ",")
	for i, name := range names {
		names[i] = strings.ToUpper(strings.TrimSpace(name))
	}

	return names
}

// SignalFromName resolves a signal name (e.g. "SIGTERM") to its os.Signal.
// Returns ErrUnknownSignalName for names that cannot be trapped or do not exist.
func SignalFromName(name string) (os.Signal, error) {
	sig, ok := signalsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, constant.ErrUnknownSignalName
	}

	return sig, nil
}

// ResolveSignals converts a list of signal names into os.Signal values,
// failing on the first unknown name.
func ResolveSignals(names []string) ([]os.Signal, error) {
	signals := make([]os.Signal, 0, len(names))

	for _, name := range names {
		sig, err := SignalFromName(name)
		if err != nil {
			return nil, err
		}

		signals = append(signals, sig)
	}

	return signals, nil
}

// ContainsSignal checks if the given signal is in the list
func ContainsSignal(signals []os.Signal, sig os.Signal) bool {
	for _, s := range signals {
		if s == sig {
			return true
		}
	}

	return false
}
