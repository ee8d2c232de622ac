package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	OpenAI struct {
		ApiKey      string  `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		Model       string  `yaml:"model" env-default:"gpt-4o-mini"`
		MaxTokens   int     `yaml:"max_tokens" env-default:"500"`
		Temperature float32 `yaml:"temperature" env-default:"0.7"`
		TimeoutSec  int     `yaml:"timeout_sec" env-default:"20"`
	} `yaml:"openai"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:""`
		Password string `yaml:"password" env-default:""`
		Database string `yaml:"database" env-default:"pharmacy"`
	} `yaml:"mongo"`
	Redis struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"6379"`
		Password string `yaml:"password" env-default:""`
		DB       int    `yaml:"db" env-default:"0"`
	} `yaml:"redis"`
	Listen struct {
		BindIP         string   `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port           string   `yaml:"port" env-default:"9200"`
		ApiKey         string   `yaml:"key" env-default:""`
		AllowedOrigins []string `yaml:"allowed_origins" env-default:"*"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
