package util_test

import (
	"testing"

	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/test/mocks"
	"github.com/LerianStudio/lib-shutdown-go/util"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *model.Config
		wantErr bool
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "missing application name",
			cfg:     &model.Config{},
			wantErr: true,
		},
		{
			name: "valid minimal config",
			cfg:  &model.Config{ApplicationName: "plugin-fees"},
		},
		{
			name: "unknown signal",
			cfg: &model.Config{
				ApplicationName:    "plugin-fees",
				TerminationSignals: []string{"SIGSTOP"},
			},
			wantErr: true,
		},
		{
			name: "exit code out of range",
			cfg: &model.Config{
				ApplicationName: "plugin-fees",
				ExitCode:        -1,
			},
			wantErr: true,
		},
		{
			name: "negative drain timeout",
			cfg: &model.Config{
				ApplicationName:     "plugin-fees",
				DrainTimeoutSeconds: -5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := util.ValidateConfig(tt.cfg, mocks.NewLogger())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfig_MissingNameCode(t *testing.T) {
	err := util.ValidateConfig(&model.Config{}, mocks.NewLogger())
	assert.ErrorIs(t, err, constant.ErrMissingAppName)
}
