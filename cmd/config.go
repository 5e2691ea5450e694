package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool-wide defaults. Values come, in order, from
// built-in defaults, ~/.config/csvt/config.toml, and CSVT_* environment
// variables.
type Config struct {
	Separator string `mapstructure:"separator"` // field delimiter of the exports
	Quote     string `mapstructure:"quote"`     // quote character of the exports
	Currency  string `mapstructure:"currency"`  // ISO code used to render amounts
	Model     string `mapstructure:"model"`     // Gemini model for tag suggestions
}

// config is read once at startup; commands use it as flag defaults.
var config = loadConfig()

func loadConfig() Config {
	v := viper.New()
	v.SetDefault("separator", ";")
	v.SetDefault("quote", "|")
	v.SetDefault("currency", "EUR")
	v.SetDefault("model", "gemini-2.5-flash")

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "csvt"))
	}
	v.SetEnvPrefix("csvt")
	v.AutomaticEnv()

	// The config file is optional.
	_ = v.ReadInConfig()

	c := Config{}
	if err := v.Unmarshal(&c); err != nil {
		return Config{Separator: ";", Quote: "|", Currency: "EUR", Model: "gemini-2.5-flash"}
	}
	return c
}
