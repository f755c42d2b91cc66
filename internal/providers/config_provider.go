package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"localjournal/internal/structures"
)

const AppName = "LocalJournal"

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 5000)
	v.SetDefault("storage.primaryPath", "journal.xlsx")
	v.SetDefault("storage.fallbackPath", "journal.csv")
	v.SetDefault("storage.sheetName", "Sheet1")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", ".")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 1)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("compression.enabled", true)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.BindEnv("logger.level", "LJ_LOG_LEVEL")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	// The fallback file lives next to the primary one unless configured explicitly.
	if !v.InConfig("storage.fallbackpath") && v.InConfig("storage.primarypath") {
		conf.Storage.FallbackPath = strings.TrimSuffix(conf.Storage.PrimaryPath, filepath.Ext(conf.Storage.PrimaryPath)) + ".csv"
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
