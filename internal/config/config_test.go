package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		logLevel      string
		currencyLabel string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				logLevel:      "info",
				currencyLabel: "บาท",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"LOG_LEVEL":      "debug",
				"CURRENCY_LABEL": "฿",
			},
			flags: []string{},
			want: want{
				logLevel:      "debug",
				currencyLabel: "฿",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-l", "warn",
				"-c", "THB",
			},
			want: want{
				logLevel:      "warn",
				currencyLabel: "THB",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"LOG_LEVEL":      "error",
				"CURRENCY_LABEL": "฿",
			},
			flags: []string{
				"-l", "debug",
				"-c", "THB",
			},
			want: want{
				logLevel:      "error",
				currencyLabel: "฿",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.logLevel, cfg.LogLevel)
			assert.Equal(t, tt.want.currencyLabel, cfg.CurrencyLabel)
		})
	}
}
