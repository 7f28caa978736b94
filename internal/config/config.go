package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	DatabaseMonitor DatabaseMonitor `mapstructure:",squash"`
}

type Server struct {
	Host   string `mapstructure:"api_host"`
	Port   string `mapstructure:"api_port"`
	Reload bool   `mapstructure:"api_reload"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Version  string `mapstructure:"app_version"`
	LogLevel string `mapstructure:"log_level"`
}

// Cors lista as origens do front-end autorizadas a consumir a API
type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DatabaseMonitor struct {
	CronSchedule string `mapstructure:"db_monitor_cron"`
	Enabled      bool   `mapstructure:"db_monitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", "8000")
	viper.SetDefault("API_RELOAD", true)

	viper.SetDefault("DATABASE_DRIVER", "postgresql")
	viper.SetDefault("DATABASE_URL", "localhost:5432/challenge_db?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "challenge")
	viper.SetDefault("DATABASE_PASSWORD", "challenge")

	viper.SetDefault("APP_NAME", "MegaBite Analytics API")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("LOG_LEVEL", "debug")

	// Front-end Next.js
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DB_MONITOR_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DB_MONITOR_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Opcional, já que usamos godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
