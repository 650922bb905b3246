package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Store     StoreConfig
	KPI       KPIConfig
	MQTT      MQTTConfig
	Realtime  RealtimeConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	MaxRequestBytes int64
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type StoreConfig struct {
	SeedSampleData bool
}

type KPIConfig struct {
	TrendMonths  int  // Length of the trailing monthly trend window
	StrictOnTime bool // Delivered shipments count as on time only when actual <= ETA
}

type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         int
}

type RealtimeConfig struct {
	PingInterval time.Duration
}

const (
	MinTrendMonths = 1
	MaxTrendMonths = 24
)

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("REQUEST_MAX_BYTES", 1<<20)
	viper.SetDefault("RATE_LIMIT_GENERAL_RPS", 20)
	viper.SetDefault("RATE_LIMIT_GENERAL_BURST", 40)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "OPTIONS"})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "X-Request-ID"})
	viper.SetDefault("CORS_EXPOSED_HEADERS", []string{"X-Request-ID"})
	viper.SetDefault("CORS_MAX_AGE", 43200)
	viper.SetDefault("SEED_SAMPLE_DATA", true)
	viper.SetDefault("KPI_TREND_MONTHS", 10)
	viper.SetDefault("KPI_STRICT_ON_TIME", true)
	viper.SetDefault("MQTT_CLIENT_ID", "supply-chain-viz")
	viper.SetDefault("MQTT_TOPIC_PREFIX", "supplychain")
	viper.SetDefault("MQTT_QOS", 1)
	viper.SetDefault("WS_PING_INTERVAL_SEC", 30)
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			Host:            viper.GetString("SERVER_HOST"),
			Environment:     viper.GetString("ENVIRONMENT"),
			MaxRequestBytes: viper.GetInt64("REQUEST_MAX_BYTES"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		Store: StoreConfig{
			SeedSampleData: viper.GetBool("SEED_SAMPLE_DATA"),
		},
		KPI: KPIConfig{
			TrendMonths:  viper.GetInt("KPI_TREND_MONTHS"),
			StrictOnTime: viper.GetBool("KPI_STRICT_ON_TIME"),
		},
		MQTT: MQTTConfig{
			Broker:      viper.GetString("MQTT_BROKER"),
			ClientID:    viper.GetString("MQTT_CLIENT_ID"),
			Username:    viper.GetString("MQTT_USERNAME"),
			Password:    viper.GetString("MQTT_PASSWORD"),
			TopicPrefix: viper.GetString("MQTT_TOPIC_PREFIX"),
			QoS:         viper.GetInt("MQTT_QOS"),
		},
		Realtime: RealtimeConfig{
			PingInterval: time.Duration(viper.GetInt("WS_PING_INTERVAL_SEC")) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.KPI.TrendMonths < MinTrendMonths || c.KPI.TrendMonths > MaxTrendMonths {
		return fmt.Errorf("KPI_TREND_MONTHS must be between %d and %d, got %d", MinTrendMonths, MaxTrendMonths, c.KPI.TrendMonths)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("MQTT_QOS must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	if c.RateLimit.GeneralRPS <= 0 || c.RateLimit.GeneralBurst <= 0 {
		return errors.New("rate limit RPS and burst must be positive")
	}
	if c.Realtime.PingInterval <= 0 {
		return errors.New("WS_PING_INTERVAL_SEC must be positive")
	}
	return nil
}

// MQTTEnabled reports whether shipment events should be published to a broker.
func (c *Config) MQTTEnabled() bool {
	return c.MQTT.Broker != ""
}
