package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host    string
		Address string `validate:"notblank"`
	}

	ChartConfig struct {
		MinAngle float64 `validate:"gt=0,lt=360"`
	}

	// RatingConfig holds the lower bounds of the qualitative rating levels.
	RatingConfig struct {
		Excellent      float64 `validate:"lte=5,gtfield=Good"`
		Good           float64 `validate:"gtfield=NeedsAttention"`
		NeedsAttention float64 `validate:"gte=0"`
	}

	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		Server       ServerConfig
		Chart        ChartConfig
		Rating       RatingConfig
	}
)

func newViper() *viper.Viper {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Talanta")
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("chart.minAngle", 3.0)
	conf.SetDefault("rating.excellent", 4.5)
	conf.SetDefault("rating.good", 3.5)
	conf.SetDefault("rating.needsAttention", 2.5)
	return conf
}

// NewConfig loads the app configuration from defaults, an optional dotenv file and the environment.
// The environment name (ENV: DEV (default), TEST, QA, PROD) is used as the env vars prefix, eg. PROD_SERVER_ADDRESS.
func NewConfig() (*Config, error) {
	conf := newViper()

	env := strings.ToUpper(CleanString(os.Getenv("ENV")))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	confDir := os.Getenv("CONFIG_DIR")
	if confDir == "" {
		confDir = "config"
	}
	dotEnvPath := filepath.Join(confDir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:    conf.GetString("server.host"),
			Address: conf.GetString("server.address"),
		},
		Chart: ChartConfig{
			MinAngle: conf.GetFloat64("chart.minAngle"),
		},
		Rating: RatingConfig{
			Excellent:      conf.GetFloat64("rating.excellent"),
			Good:           conf.GetFloat64("rating.good"),
			NeedsAttention: conf.GetFloat64("rating.needsAttention"),
		},
	}

	validate, _ := NewValidator()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}
