package config

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(emulatorHostEnv, "")
	req := require.New(t)

	cfg, err := New("")
	req.NoError(err)

	req.Equal("127.0.0.1", cfg.Host)
	req.Equal(8086, cfg.Port)
	req.Equal("ecnext-devel", cfg.Project)
	req.Equal("integration-testing", cfg.Instance)
	req.Equal("itd_a6f34e35cd60454c84243e5eae84d79e", cfg.Table)
	req.Equal("repro-test", cfg.UserAgent)
	req.Equal([]string{"c", "s", "m", "n", "d"}, cfg.Families)
	req.Equal("d", cfg.CheckFamily)
	req.Equal([]byte{1, 2}, cfg.AcceptedBytes())
	req.Equal(12, cfg.ExpectedRows)
	req.Equal("debug", cfg.LogLevel)
	req.False(cfg.EmbeddedEmulator)
	req.Equal("127.0.0.1:8086", cfg.Address())
}

func TestNew_Environment(t *testing.T) {
	tests := map[string]struct {
		env     map[string]string
		check   func(req *require.Assertions, cfg *Config)
		wantErr string
	}{
		"prefixed overrides": {
			env: map[string]string{
				"REPRO_TABLE":           "other",
				"REPRO_ACCEPTED_VALUES": "3,4,5",
				"REPRO_EXPECTED_ROWS":   "240",
			},
			check: func(req *require.Assertions, cfg *Config) {
				req.Equal("other", cfg.Table)
				req.Equal([]byte{3, 4, 5}, cfg.AcceptedBytes())
				req.Equal(240, cfg.ExpectedRows)
			},
		},
		"emulator host fills in the address": {
			env: map[string]string{
				emulatorHostEnv: "localhost:9000",
			},
			check: func(req *require.Assertions, cfg *Config) {
				req.Equal("localhost", cfg.Host)
				req.Equal(9000, cfg.Port)
			},
		},
		"explicit port beats the emulator host": {
			env: map[string]string{
				emulatorHostEnv: "localhost:9000",
				"REPRO_PORT":    "8500",
			},
			check: func(req *require.Assertions, cfg *Config) {
				req.Equal("localhost", cfg.Host)
				req.Equal(8500, cfg.Port)
			},
		},
		"malformed emulator host": {
			env: map[string]string{
				emulatorHostEnv: "no-port",
			},
			wantErr: "invalid BIGTABLE_EMULATOR_HOST",
		},
		"check family outside the table": {
			env: map[string]string{
				emulatorHostEnv:      "",
				"REPRO_CHECK_FAMILY": "x",
			},
			wantErr: `check family "x" is not one of`,
		},
		"accepted value overflows a byte": {
			env: map[string]string{
				emulatorHostEnv:         "",
				"REPRO_ACCEPTED_VALUES": "1,256",
			},
			wantErr: "accepted value 256 does not fit in a byte",
		},
		"bad log level": {
			env: map[string]string{
				emulatorHostEnv:   "",
				"REPRO_LOG_LEVEL": "loud",
			},
			wantErr: `invalid log level "loud"`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			req := require.New(t)

			cfg, err := New("")
			if tc.wantErr != "" {
				req.Error(err)
				req.Nil(cfg)
				req.Contains(err.Error(), tc.wantErr)
				return
			}

			req.NoError(err)
			tc.check(req, cfg)
		})
	}
}

func TestNew_ConfigFile(t *testing.T) {
	t.Setenv(emulatorHostEnv, "")
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "repro.yaml")
	content := []byte(`host: 10.0.0.5
port: 9035
table: repro_table
families: [a, b]
check_family: b
log_pretty: true
mutations_fixture: /tmp/mutations.pb
`)
	req.NoError(os.WriteFile(path, content, 0600))

	cfg, err := New(path)
	req.NoError(err)
	req.Equal("10.0.0.5:9035", cfg.Address())
	req.Equal("repro_table", cfg.Table)
	req.Equal([]string{"a", "b"}, cfg.Families)
	req.Equal("b", cfg.CheckFamily)
	req.True(cfg.LogPretty)
	req.Equal("/tmp/mutations.pb", cfg.MutationsFixture)
	req.Empty(cfg.RequestFixture)
}

func TestNew_MissingConfigFile(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_validate(t *testing.T) {
	cfg := &Config{}
	err := cfg.validate()
	require.Error(t, err)
	require.Equal(t, "host is required\ninvalid port: 0\nproject is required\ninstance is required\n"+
		"table is required\nat least one column family is required\ncheck family is required\n"+
		"at least one accepted value is required", err.Error())
}
