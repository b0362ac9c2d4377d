package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/structaware/structaware-go/client"
)

// Options configures the terminal application. Flags override the optional
// YAML config file, which overrides built-in defaults.
type Options struct {
	APIURL    string `short:"u" long:"api-url" description:"remote API base URL" yaml:"api_url"`
	StateURL  string `short:"s" long:"state" description:"durable state snapshot location" yaml:"state_url"`
	ConfigURL string `short:"f" long:"config" description:"YAML config file location" yaml:"-"`
	Dark      bool   `long:"dark" description:"seed dark mode when no theme was saved" yaml:"dark"`
	Debug     bool   `long:"debug" description:"verbose logging" yaml:"debug"`
}

// Init layers config-file values and defaults under any explicitly set
// flags. A missing config file is not an error.
func (o *Options) Init() error {
	v := viper.New()
	v.SetDefault("api_url", client.DefaultBaseURL)
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("state_url", filepath.Join(home, ".structaware", "state.json"))
		v.AddConfigPath(filepath.Join(home, ".structaware"))
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if o.ConfigURL != "" {
		v.SetConfigFile(o.ConfigURL)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return err
		}
	}
	if o.APIURL == "" {
		o.APIURL = v.GetString("api_url")
	}
	if o.StateURL == "" {
		o.StateURL = v.GetString("state_url")
	}
	if !o.Dark {
		o.Dark = v.GetBool("dark")
	}
	if !o.Debug {
		o.Debug = v.GetBool("debug")
	}
	return nil
}
