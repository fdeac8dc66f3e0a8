package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name       string
		in         Config
		want       Config
		errContain string
	}{
		{
			name: "defaults",
			in:   Config{},
			want: Config{RootDir: ".", LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "explicit values are kept",
			in:   Config{RootDir: "/src", SettingsPath: "s.yaml", LogLevel: "debug", LogFormat: "console"},
			want: Config{RootDir: "/src", SettingsPath: "s.yaml", LogLevel: "debug", LogFormat: "console"},
		},
		{
			name:       "invalid level",
			in:         Config{LogLevel: "verbose"},
			errContain: "invalid log-level 'verbose'",
		},
		{
			name:       "invalid format",
			in:         Config{LogFormat: "xml"},
			errContain: "invalid log-format 'xml'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.in)
			if tc.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}
