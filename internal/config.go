package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the client configuration, read from the environment.
type Config struct {
	BackendAddr        string        `env:"CREWCAST_BACKEND_ADDR,default=localhost:50051" validate:"required,hostname_port"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	NodeRowID          int64         `env:"NODE_ROW_ID,default=1" validate:"gte=1"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL,default=30s" validate:"gt=0"`
	ActiveWindow       time.Duration `env:"ACTIVE_WINDOW,default=60s" validate:"gt=0"`
	ProgressGraceDelay time.Duration `env:"PROGRESS_GRACE_DELAY,default=1s" validate:"gte=0"`
	LookupTimeout      time.Duration `env:"LOOKUP_TIMEOUT,default=10s" validate:"gt=0"`
	RPCTimeout         time.Duration `env:"RPC_TIMEOUT,default=15s" validate:"gt=0"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	NotificationBuffer int           `env:"NOTIFICATION_BUFFER,default=64" validate:"gte=1"`
	StatsInterval      time.Duration `env:"STATS_INTERVAL,default=5m" validate:"gt=0"`
	IdentityCachePath  string        `env:"IDENTITY_CACHE_PATH"`
	CensoredWords      string        `env:"CENSORED_WORDS"`
	CensoredWordsDir   string        `env:"CENSORED_WORDS_DIR"`
	CharReplacement    string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

var validate = validator.New()

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := CharacterRune(config.CharReplacement); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Words returns the inline censored words.
func (c Config) Words() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	return strings.Split(c.CensoredWords, ",")
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
