package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "GM"

type (
	ServerConfig struct {
		Address         string
		Host            string
		ShutdownTimeout time.Duration
	}

	// SchoolConfig is the institution identity printed on every report.
	SchoolConfig struct {
		Name    string
		Address string
		Phone   string
		Email   string
	}

	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		Build        string
		RollbarToken string
		ReportsDir   string
		Holidays     bool
		Server       ServerConfig
		School       SchoolConfig
	}
)

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "GM")
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("reportsDir", ".")
	v.SetDefault("holidays", true)
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("school.name", "École Primaire Excellence")
	v.SetDefault("school.address", "Quartier Almamya, Kaloum, Conakry")
	v.SetDefault("school.phone", "+224 620 12 34 56")
	v.SetDefault("school.email", "contact@ecole-excellence.gn")
}

// LoadConfig reads the configuration from the environment, after loading
// `config/.env.<env>` when that file exists.
func LoadConfig() (*Config, error) {
	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		ReportsDir:   v.GetString("reportsDir"),
		Holidays:     v.GetBool("holidays"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			Host:            v.GetString("server.host"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		School: SchoolConfig{
			Name:    v.GetString("school.name"),
			Address: v.GetString("school.address"),
			Phone:   v.GetString("school.phone"),
			Email:   v.GetString("school.email"),
		},
	}, nil
}
