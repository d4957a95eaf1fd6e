package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig     `envconfig:"HTTP_SERVER"`
	HttpClient     HttpClientConfig     `envconfig:"HTTP_CLIENT"`
	ReservationAPI ReservationAPIConfig `envconfig:"RESERVATION_API"`
	Redis          RedisConfig          `envconfig:"REDIS"`
	Session        SessionConfig        `envconfig:"SESSION"`
	MessageStream  MessageStreamConfig  `envconfig:"MESSAGE_STREAM"`
	Scheduler      SchedulerConfig      `envconfig:"SCHEDULER"`
	Logger         LoggerConfig         `envconfig:"LOGGER"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type HttpClientConfig struct {
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Type       string        `envconfig:"TYPE" default:"threshold"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
}

type ReservationAPIConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://travel-server.test/api"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// Enabled reports whether a redis server is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"TTL" default:"8h"`
}

type MessageStreamConfig struct {
	URI               string `envconfig:"URI"`
	NotificationTopic string `envconfig:"NOTIFICATION_TOPIC" default:"dashboard_notifications"`
}

type SchedulerConfig struct {
	Enabled        bool   `envconfig:"ENABLED" default:"false"`
	Concurrency    int    `envconfig:"CONCURRENCY" default:"10"`
	MonitoringPort string `envconfig:"MONITORING_PORT" default:"8081"`
}

type LoggerConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, reading configuration from environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
