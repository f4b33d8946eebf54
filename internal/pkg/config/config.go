package config

import (
	"errors"
	"os"

	"github.com/ardanlabs/conf"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port       string `yaml:"port" conf:"default::8080"`
	DBUsername string `yaml:"db_username" conf:"-"`
	DBPassword string `yaml:"db_password" conf:"-"`
	DBHost     string `yaml:"db_host" conf:"default:localhost"`
	DBPort     string `yaml:"db_port" conf:"default:5432"`
	DBName     string `yaml:"db_name" conf:"-"`
	DisableTLS bool   `yaml:"disable_tls" conf:"default:true"`
	RedisAddr  string `yaml:"redis_addr" conf:"default:localhost:6379"`
	BaseUrl    string `yaml:"base_url"`
	JWTKey     string `yaml:"jwt_key" conf:"noprint"`
	Currency   string `yaml:"currency" conf:"default:INR"`
	Debug      bool   `yaml:"debug"`
}

// NewConfig loads config.yaml and then lets environment variables and flags
// override it (BIZ_DB_HOST=... or --db-host=...).
func NewConfig() (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(yamlFile, &c); err != nil {
		return nil, err
	}

	if err := conf.Parse(os.Args[1:], "BIZ", &c); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, uerr := conf.Usage("BIZ", &c)
			if uerr != nil {
				return nil, uerr
			}
			os.Stdout.WriteString(usage + "\n")
			os.Exit(0)
		}
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	return &c, nil
}
