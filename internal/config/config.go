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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	SummarySnapshotSync SummarySnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Analytics struct {
	// MomentumMinRevenue is the current-period revenue floor below which a
	// product is excluded from the momentum report.
	MomentumMinRevenue float64 `mapstructure:"analytics_momentum_min_revenue"`
	DefaultPairLimit   int     `mapstructure:"analytics_default_pair_limit"`
	DefaultRankLimit   int     `mapstructure:"analytics_default_rank_limit"`
}

type SummarySnapshotSync struct {
	CronSchedule  string `mapstructure:"summary_snapshot_sync_cron"`
	Enabled       bool   `mapstructure:"summary_snapshot_sync_enabled"`
	RetentionDays int    `mapstructure:"summary_snapshot_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ANALYTICS_MOMENTUM_MIN_REVENUE", 100.0)
	viper.SetDefault("ANALYTICS_DEFAULT_PAIR_LIMIT", 10)
	viper.SetDefault("ANALYTICS_DEFAULT_RANK_LIMIT", 10)

	viper.SetDefault("SUMMARY_SNAPSHOT_SYNC_CRON", "30 2 * * *") // daily, 02:30
	viper.SetDefault("SUMMARY_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SUMMARY_SNAPSHOT_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
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

// loadEnvFile loads a .env file from the usual local-dev locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
