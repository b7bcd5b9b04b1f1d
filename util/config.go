package util

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Environment      string `mapstructure:"ENVIRONMENT"`
	LogLevel         string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	OutputFormat     string `mapstructure:"OUTPUT_FORMAT" validate:"oneof=html text markup term"`
	MaxInputBytes    int64  `mapstructure:"MAX_INPUT_BYTES" validate:"gt=0"`
	ParseWorkers     int    `mapstructure:"PARSE_WORKERS" validate:"gt=0"`
	TermLinkColor    string `mapstructure:"TERM_LINK_COLOR"`
	TermMentionColor string `mapstructure:"TERM_MENTION_COLOR"`
	TermHashtagColor string `mapstructure:"TERM_HASHTAG_COLOR"`
	TermCodeColor    string `mapstructure:"TERM_CODE_COLOR"`
}

var defaults = map[string]any{
	"ENVIRONMENT":        "production",
	"LOG_LEVEL":          "info",
	"OUTPUT_FORMAT":      "html",
	"MAX_INPUT_BYTES":    1 << 20,
	"PARSE_WORKERS":      4,
	"TERM_LINK_COLOR":    "",
	"TERM_MENTION_COLOR": "",
	"TERM_HASHTAG_COLOR": "",
	"TERM_CODE_COLOR":    "",
}

// LoadConfig reads app.env from the path and overrides it with the environment.
// A missing app.env is not an error: defaults and the environment are used then.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// AutomaticEnv only affects keys viper already knows about
	for key, val := range defaults {
		viper.SetDefault(key, val)
	}

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values which cannot be fixed silently.
func (config Config) Validate() error {
	err := validator.New().Struct(config)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config value %v of %s: failed on the %q rule", fe.Value(), fe.Field(), fe.Tag())
	}

	return err
}
