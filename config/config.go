package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	UpstreamHost   string
	RequestTimeout time.Duration
	SessionTTL     time.Duration
	TracingConfig  TracingConfig
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  os.Getenv("SERVICE_PORT"),
		MetricsPort:  os.Getenv("METRICS_PORT"),
		Environment:  os.Getenv("ENVIRONMENT"),
		UpstreamHost: os.Getenv("UPSTREAM_HOST"),
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	requestTimeoutMs, err := strconv.Atoi(os.Getenv("REQUEST_TIMEOUT_MS"))
	if err != nil || requestTimeoutMs <= 0 {
		requestTimeoutMs = 10000
	}
	conf.RequestTimeout = time.Duration(requestTimeoutMs) * time.Millisecond

	sessionTTLMinutes, err := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES"))
	if err != nil || sessionTTLMinutes <= 0 {
		sessionTTLMinutes = 60
	}
	conf.SessionTTL = time.Duration(sessionTTLMinutes) * time.Minute

	return &conf
}
