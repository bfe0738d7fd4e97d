package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const FileName = "goldpiece.cfg.yaml"

// Settings is the typed view of the runtime settings.
type Settings struct {
	LogLevel   string
	Level      string
	PrefabsDir string
	Debug      bool

	SaveAppName string
	SaveEnabled bool

	WindowWidth  int
	WindowHeight int
}

// SetDefaults registers the default values. Load calls it.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("level", "demo.json")
	viper.SetDefault("prefabsDir", "prefabs")
	viper.SetDefault("debug", false)

	viper.SetDefault("save.appName", "goldpiece")
	viper.SetDefault("save.enabled", true)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
}

// Load reads goldpiece.cfg.yaml from configDir. Defaults stay in effect when
// the file is missing; the error is still returned so callers can log it.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName("goldpiece.cfg")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", FileName, err)
	}
	return nil
}

// IsNotFound reports whether err means no config file was found.
func IsNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return err != nil && errors.As(err, &nf)
}

func Current() Settings {
	return Settings{
		LogLevel:     GetString("logLevel"),
		Level:        GetString("level"),
		PrefabsDir:   GetString("prefabsDir"),
		Debug:        GetBool("debug"),
		SaveAppName:  GetString("save.appName"),
		SaveEnabled:  GetBool("save.enabled"),
		WindowWidth:  GetInt("window.width"),
		WindowHeight: GetInt("window.height"),
	}
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}
