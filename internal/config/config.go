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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	PendingRecheck PendingRecheck `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dashboard controla o comportamento do banner de vendas em espera.
//
// AllowBannerDismissal=false rejeita dispensa e soneca (o banner nunca pode
// ser escondido pelo usuário). BannerDismissalDurationMs=0 torna a dispensa
// permanente até a lista de vendas em espera mudar.
type Dashboard struct {
	AllowBannerDismissal      bool  `mapstructure:"allow_banner_dismissal"`
	BannerDismissalDurationMs int64 `mapstructure:"banner_dismissal_duration_ms"`
	BannerSnoozeDurationMs    int64 `mapstructure:"banner_snooze_duration_ms"`
}

// PendingRecheck configura o tick periódico de reavaliação do banner
type PendingRecheck struct {
	CronSchedule string `mapstructure:"pending_recheck_cron"`
	Enabled      bool   `mapstructure:"pending_recheck_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shop")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do banner de vendas em espera
	viper.SetDefault("ALLOW_BANNER_DISMISSAL", true)
	viper.SetDefault("BANNER_DISMISSAL_DURATION_MS", 24*60*60*1000) // 24 horas
	viper.SetDefault("BANNER_SNOOZE_DURATION_MS", 60*60*1000)       // 1 hora

	// Reavaliação do banner a cada minuto, para expiração de dispensa/soneca
	// e rótulos "há X minutos" corretos
	viper.SetDefault("PENDING_RECHECK_CRON", "* * * * *")
	viper.SetDefault("PENDING_RECHECK_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
