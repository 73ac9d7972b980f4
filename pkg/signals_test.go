package pkg_test

import (
	"os"
	"syscall"
	"testing"

	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignalNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single signal",
			input:    "SIGTERM",
			expected: []string{"SIGTERM"},
		},
		{
			name:     "multiple with spaces and case",
			input:    " sigint , SigTerm ",
			expected: []string{"SIGINT", "SIGTERM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pkg.ParseSignalNames(tt.input))
		})
	}
}

func TestSignalFromName(t *testing.T) {
	sig, err := pkg.SignalFromName("sigterm")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGTERM, sig)

	_, err = pkg.SignalFromName("SIGKILL")
	assert.ErrorIs(t, err, constant.ErrUnknownSignalName)
}

func TestResolveSignals(t *testing.T) {
	signals, err := pkg.ResolveSignals([]string{"SIGINT", "SIGHUP"})
	require.NoError(t, err)
	assert.Equal(t, []os.Signal{syscall.SIGINT, syscall.SIGHUP}, signals)

	_, err = pkg.ResolveSignals([]string{"SIGINT", "NOPE"})
	assert.Error(t, err)
}

func TestContainsSignal(t *testing.T) {
	signals := []os.Signal{syscall.SIGINT, syscall.SIGTERM}

	assert.True(t, pkg.ContainsSignal(signals, syscall.SIGTERM))
	assert.False(t, pkg.ContainsSignal(signals, syscall.SIGHUP))
}
