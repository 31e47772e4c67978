package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `env-default:"info" yaml:"log-level"`
	HTTPPort string `env-default:"9090" yaml:"http-port"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `env-default:"localhost" yaml:"host"`
	Port string `env-default:"6379"      yaml:"port"`
}

type Game struct {
	DefaultBoardSize int `env-default:"3" yaml:"default-board-size"`
	// BotDelayMS paces the bot's reply for the UI; zero disables the delay.
	BotDelayMS int `env-default:"0" yaml:"bot-delay-ms"`
}

// MustLoad - load all configurations in config.yml file.
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

func (that *Game) BotDelay() time.Duration {
	return time.Duration(that.BotDelayMS) * time.Millisecond
}
