package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"local"`
	DSN        string           `yaml:"dsn"` // пусто: галерея работает на фикстурах
	HTTP       HTTPConfig       `yaml:"http"`
	Redis      RedisConf        `yaml:"redis"`
	Gallery    GalleryConfig    `yaml:"gallery"`
	Generation GenerationConfig `yaml:"generation"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redispassword"`
	RedisDB       int    `yaml:"redis_db"`
}

type GalleryConfig struct {
	FixturePath    string        `yaml:"fixture_path"`
	SearchDebounce time.Duration `yaml:"search_debounce" env-default:"300ms"`
	CacheTTL       time.Duration `yaml:"cache_ttl" env-default:"30s"`
}

type GenerationConfig struct {
	StepDelay time.Duration `yaml:"step_delay" env-default:"500ms"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
