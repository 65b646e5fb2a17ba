package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configEnvPath = "OPENRATES_CONFIG"
)

// secrets that may come from the environment (or a .env file) instead of the yaml
const (
	envTelegramToken    = "OPENRATES_TELEGRAM_TOKEN"
	envFixerAPIKey      = "OPENRATES_FIXER_API_KEY"
	envPostgresPassword = "OPENRATES_POSTGRES_PASSWORD"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Ecb       EcbConfig       `yaml:"ecb"`
	Fixer     FixerConfig     `yaml:"fixer"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Badger    BadgerConfig    `yaml:"badger"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
	HTTP      HTTPConfig      `yaml:"http"`
}

type Service struct {
	config config
}

// New reads data/config.yaml, or the file named by OPENRATES_CONFIG.
// Variables from ./.env are loaded first; secrets set in the environment
// override the file.
func New() (*Service, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	path := os.Getenv(configEnvPath)
	if path == "" {
		path = configFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	s, err := Parse(rawYAML)
	if err != nil {
		return nil, err
	}
	s.applyEnv()
	return s, nil
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	return s, nil
}

func (s *Service) applyEnv() {
	if v, ok := os.LookupEnv(envTelegramToken); ok {
		s.config.Telegram.ApiToken = v
	}
	if v, ok := os.LookupEnv(envFixerAPIKey); ok {
		s.config.Fixer.FixerApiKey = v
	}
	if v, ok := os.LookupEnv(envPostgresPassword); ok {
		s.config.Postgres.Pswd = v
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Ecb() *EcbConfig {
	return &s.config.Ecb
}

func (s *Service) Fixer() *FixerConfig {
	return &s.config.Fixer
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}

func (s *Service) Badger() *BadgerConfig {
	return &s.config.Badger
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}
