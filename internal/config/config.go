package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DanRulev/flashcards/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Env   string      `mapstructure:"env" validate:"oneof=development production"`
	Log   LogConfig   `mapstructure:"log"`
	Files FilesConfig `mapstructure:"files"`
	Quiz  QuizConfig  `mapstructure:"quiz"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Output string `mapstructure:"output" validate:"required"`
}

// FilesConfig names the card files read before the session and written after it.
type FilesConfig struct {
	Import string `mapstructure:"import"`
	Export string `mapstructure:"export"`
}

type QuizConfig struct {
	// Seed of the question picker; 0 picks a random seed.
	Seed int64 `mapstructure:"seed"`
}

var envBindings = map[string]string{
	"env":          "APP_ENV",
	"log.level":    "LOG_LEVEL",
	"log.output":   "LOG_OUTPUT",
	"files.import": "FLASHCARDS_IMPORT",
	"files.export": "FLASHCARDS_EXPORT",
	"quiz.seed":    "QUIZ_SEED",
}

// Init layers defaults, the optional configs/<CONFIG_NAME>.yaml file, the
// environment and finally the command-line args.
func Init(args []string, stderr io.Writer) (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "production")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("files.import", "")
	v.SetDefault("files.export", "")
	v.SetDefault("quiz.seed", 0)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	parsed := ParseArgs(args, stderr)
	if parsed.Import != "" {
		v.Set("files.import", parsed.Import)
	}
	if parsed.Export != "" {
		v.Set("files.export", parsed.Export)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
