package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Goodtill        Goodtill        `mapstructure:",squash"`
	Archive         Archive         `mapstructure:",squash"`
	DailyExportSync DailyExportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Goodtill holds the upstream API settings. One bearer token per till.
type Goodtill struct {
	URL       string `mapstructure:"goodtill_url"`
	FoodToken string `mapstructure:"food_token"`
	BarToken  string `mapstructure:"bar_token"`
	PageSize  int    `mapstructure:"goodtill_page_size"`
}

type Archive struct {
	Dir string `mapstructure:"archive_dir"`
}

type DailyExportSync struct {
	CronSchedule string `mapstructure:"daily_export_sync_cron"`
	Enabled      bool   `mapstructure:"daily_export_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOODTILL_URL", "https://api.thegoodtill.com/api")
	viper.SetDefault("GOODTILL_PAGE_SIZE", 50)

	viper.SetDefault("ARCHIVE_DIR", "GoodtillSalesArchive")

	viper.SetDefault("DAILY_EXPORT_SYNC_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("DAILY_EXPORT_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("No .env file read by viper, relying on environment: ", err)
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

	return config, nil
}

// Validate checks the credentials for both tills and names every missing one,
// so a broken deployment fails before any network call is made.
func (c *Config) Validate() error {
	var missing []string

	if c.Goodtill.FoodToken == "" {
		missing = append(missing, "FOOD_TOKEN")
	}
	if c.Goodtill.BarToken == "" {
		missing = append(missing, "BAR_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// loadEnvFile loads a .env file via godotenv for local runs
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Loaded .env from: ", location)
			return
		}
	}
}
