package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// JWTConfig holds everything the token service needs.
type JWTConfig struct {
	SecretKey       string `mapstructure:"secretKey"`
	Issuer          string `mapstructure:"issuer"`
	ExpirationHours int    `mapstructure:"expirationHours"`
}

type Config struct {
	Mode         string `mapstructure:"mode"`
	Repositories struct {
		Mongo struct {
			URL string `mapstructure:"url"`
			DB  string `mapstructure:"db"`
		} `mapstructure:"mongo"`
	} `mapstructure:"repositories"`
	Auth struct {
		JWT JWTConfig `mapstructure:"jwt"`
	} `mapstructure:"auth"`
	Server struct {
		HTTPPort    string        `mapstructure:"HTTPPort"`
		MetricsPort string        `mapstructure:"metricsPort"`
		Timeout     time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Cors struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
	AI struct {
		APIKey     string `mapstructure:"apiKey"`
		TextModel  string `mapstructure:"textModel"`
		ImageModel string `mapstructure:"imageModel"`
	} `mapstructure:"ai"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	applyEnvOverrides(&config)
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

// applyEnvOverrides lets deployment environments replace secrets and
// connection data without editing config files.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONGO_URL"); v != "" {
		cfg.Repositories.Mongo.URL = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Repositories.Mongo.DB = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWT.SecretKey = v
	}
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.Auth.JWT.ExpirationHours = hours
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Cors.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("GOOGLE_GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
}
