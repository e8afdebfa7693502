package config

import (
	"time"
)

type DB struct {
	Url          string        `envconfig:"URL"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnLifetime time.Duration `envconfig:"CONN_LIFETIME" default:"1h"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:""`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Kafka struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"`
	Topic   string `envconfig:"TOPIC" default:"booking.confirmations"`
}

// Webpay holds the gateway endpoint and merchant credentials. Empty
// credentials in the integration environment fall back to the published
// Webpay test commerce (see infra/provider/secrets).
type Webpay struct {
	BaseUrl      string        `envconfig:"BASE_URL" default:"https://webpay3gint.transbank.cl"`
	CommerceCode string        `envconfig:"COMMERCE_CODE"`
	ApiKey       string        `envconfig:"API_KEY"`
	ReturnUrl    string        `envconfig:"RETURN_URL" default:"http://localhost:3000/payments/return"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[vuelasur]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env            string     `envconfig:"APP_ENV" default:"development"`
	Debug          bool       `envconfig:"DEBUG" default:"false"`
	OrderRefPrefix string     `envconfig:"ORDER_REF_PREFIX" default:"VS"`
	Server         *Server    `envconfig:"SERVER"`
	Log            *Log       `envconfig:"LOG"`
	DB             *DB        `envconfig:"DATABASE"`
	Redis          *Redis     `envconfig:"REDIS"`
	Kafka          *Kafka     `envconfig:"KAFKA"`
	Webpay         *Webpay    `envconfig:"WEBPAY"`
	RateLimit      *RateLimit `envconfig:"RATE_LIMIT"`
}
