package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBSource string `env:"DB_SOURCE" envDefault:"sangem.db"`

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"sangem-dev-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	HashPasswords bool          `env:"HASH_PASSWORDS" envDefault:"false"`

	CORSOrigins     []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitMax    int      `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow int      `env:"RATE_LIMIT_WINDOW" envDefault:"60"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatIDs  []int64 `env:"TELEGRAM_CHAT_IDS" envSeparator:","`

	AdminOrderLimit  int `env:"ADMIN_ORDER_LIMIT" envDefault:"500"`
	BranchOrderLimit int `env:"BRANCH_ORDER_LIMIT" envDefault:"200"`

	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// Load reads .env files (when present) and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		utils.InfoLogger.Debugf("no .env loaded: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AdminOrderLimit <= 0 || cfg.BranchOrderLimit <= 0 {
		return nil, fmt.Errorf("order limits must be positive")
	}
	return cfg, nil
}

func (c *Config) LogOptions() utils.LogOptions {
	return utils.LogOptions{Level: c.LogLevel, File: c.LogFile}
}
