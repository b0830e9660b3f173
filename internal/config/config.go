package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	GameTTL  time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"1h"`
	Redis    Redis         `yaml:"redis"`
	Bot      Bot           `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Bot tunes the computer player. With DepthPenalty set, faster wins and slower losses score better.
type Bot struct {
	DepthPenalty bool `yaml:"depth-penalty" env:"BOT_DEPTH_PENALTY" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
