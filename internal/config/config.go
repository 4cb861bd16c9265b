package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"net"
	"strconv"
	"strings"
)

const (
	envPrefix       = "REPRO"
	emulatorHostEnv = "BIGTABLE_EMULATOR_HOST"

	defaultHost      = "127.0.0.1"
	defaultPort      = 8086
	defaultProject   = "ecnext-devel"
	defaultInstance  = "integration-testing"
	defaultTable     = "itd_a6f34e35cd60454c84243e5eae84d79e"
	defaultUserAgent = "repro-test"
	defaultLogLevel  = "debug"

	// Bigtable returns 12 rows for the bundled fixtures.
	defaultExpectedRows = 12
)

var (
	defaultFamilies       = []string{"c", "s", "m", "n", "d"}
	defaultCheckFamily    = "d"
	defaultAcceptedValues = []int{1, 2}
)

// Config is everything the repro needs to know about where it runs and what it checks.
type Config struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Project   string `mapstructure:"project"`
	Instance  string `mapstructure:"instance"`
	Table     string `mapstructure:"table"`
	UserAgent string `mapstructure:"user_agent"`

	// EmulatorHost mirrors BIGTABLE_EMULATOR_HOST. It only fills in host and port when
	// they are not set explicitly.
	EmulatorHost string `mapstructure:"emulator_host"`

	Families       []string `mapstructure:"families"`
	CheckFamily    string   `mapstructure:"check_family"`
	AcceptedValues []int    `mapstructure:"accepted_values"`
	ExpectedRows   int      `mapstructure:"expected_rows"`

	// Paths on disk that replace the embedded fixtures when set.
	MutationsFixture string `mapstructure:"mutations_fixture"`
	RequestFixture   string `mapstructure:"request_fixture"`

	LogLevel         string `mapstructure:"log_level"`
	LogPretty        bool   `mapstructure:"log_pretty"`
	EmbeddedEmulator bool   `mapstructure:"embedded_emulator"`
}

// New loads the configuration from defaults, an optional config file and the environment,
// in increasing order of precedence. Environment keys are prefixed with REPRO_, for
// example REPRO_TABLE or REPRO_ACCEPTED_VALUES=1,2.
func New(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// host and port carry no default so that BIGTABLE_EMULATOR_HOST can fill them in.
	if err := v.BindEnv("host"); err != nil {
		return nil, fmt.Errorf("failed to bind host: %w", err)
	}
	if err := v.BindEnv("port"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}
	if err := v.BindEnv("emulator_host", emulatorHostEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", emulatorHostEnv, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.resolveAddress(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project", defaultProject)
	v.SetDefault("instance", defaultInstance)
	v.SetDefault("table", defaultTable)
	v.SetDefault("user_agent", defaultUserAgent)
	v.SetDefault("families", defaultFamilies)
	v.SetDefault("check_family", defaultCheckFamily)
	v.SetDefault("accepted_values", defaultAcceptedValues)
	v.SetDefault("expected_rows", defaultExpectedRows)
	v.SetDefault("mutations_fixture", "")
	v.SetDefault("request_fixture", "")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_pretty", false)
	v.SetDefault("embedded_emulator", false)
}

// resolveAddress fills in host and port: explicit values win, then the emulator
// variable, then the loopback defaults.
func (c *Config) resolveAddress() error {
	host, port := defaultHost, defaultPort
	if c.EmulatorHost != "" {
		h, p, err := net.SplitHostPort(c.EmulatorHost)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", emulatorHostEnv, c.EmulatorHost, err)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid %s port %q: %w", emulatorHostEnv, p, err)
		}
		host, port = h, n
	}

	if c.Host == "" {
		c.Host = host
	}
	if c.Port == 0 {
		c.Port = port
	}
	return nil
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Host == "" {
		errGrp = append(errGrp, errors.New("host is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errGrp = append(errGrp, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Project == "" {
		errGrp = append(errGrp, errors.New("project is required"))
	}
	if c.Instance == "" {
		errGrp = append(errGrp, errors.New("instance is required"))
	}
	if c.Table == "" {
		errGrp = append(errGrp, errors.New("table is required"))
	}
	if len(c.Families) == 0 {
		errGrp = append(errGrp, errors.New("at least one column family is required"))
	}
	if c.CheckFamily == "" {
		errGrp = append(errGrp, errors.New("check family is required"))
	} else if !c.hasFamily(c.CheckFamily) {
		errGrp = append(errGrp, fmt.Errorf("check family %q is not one of %v", c.CheckFamily,
			c.Families))
	}
	if len(c.AcceptedValues) == 0 {
		errGrp = append(errGrp, errors.New("at least one accepted value is required"))
	}
	for _, value := range c.AcceptedValues {
		if value < 0 || value > 255 {
			errGrp = append(errGrp, fmt.Errorf("accepted value %d does not fit in a byte", value))
		}
	}
	if c.ExpectedRows < 0 {
		errGrp = append(errGrp, fmt.Errorf("invalid expected rows: %d", c.ExpectedRows))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errGrp = append(errGrp, fmt.Errorf("invalid log level %q", c.LogLevel))
	}

	return errors.Join(errGrp...)
}

func (c *Config) hasFamily(family string) bool {
	for _, f := range c.Families {
		if f == family {
			return true
		}
	}
	return false
}

// Address is the host:port the session dials.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AcceptedBytes returns the accepted values of the checked cell as single bytes.
func (c *Config) AcceptedBytes() []byte {
	out := make([]byte, 0, len(c.AcceptedValues))
	for _, value := range c.AcceptedValues {
		out = append(out, byte(value))
	}
	return out
}
