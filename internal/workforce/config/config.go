// Package config loads the service settings from a YAML file. Every key can
// be overridden by an environment variable of the same name.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location relative to the repository root.
const DefaultPath = "internal/workforce/config/config.yaml"

// Config struct for YAML configuration
type Config struct {
	GRPCPort     int      `yaml:"GRPC_PORT"`
	HTTPPort     int      `yaml:"HTTP_PORT"`
	DBDriver     string   `yaml:"DB_DRIVER"`
	DBPath       string   `yaml:"DB_PATH"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
	JWTSecret    string   `yaml:"JWT_SECRET"`
	LogLevel     string   `yaml:"LOG_LEVEL"`
}

// Load reads the file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	stringVars := map[string]*string{
		"DB_DRIVER":   &c.DBDriver,
		"DB_PATH":     &c.DBPath,
		"DB_HOST":     &c.DBHost,
		"DB_USER":     &c.DBUser,
		"DB_PASSWORD": &c.DBPassword,
		"DB_NAME":     &c.DBName,
		"DB_SSLMODE":  &c.DBSSLMode,
		"TOPIC":       &c.Topic,
		"JWT_SECRET":  &c.JWTSecret,
		"LOG_LEVEL":   &c.LogLevel,
	}
	for key, dst := range stringVars {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GRPC_PORT": &c.GRPCPort,
		"HTTP_PORT": &c.HTTPPort,
		"DB_PORT":   &c.DBPort,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}

	if v, ok := lookup("KAFKA_BROKERS"); ok {
		c.KafkaBrokers = nil
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				c.KafkaBrokers = append(c.KafkaBrokers, broker)
			}
		}
	}
	return nil
}
