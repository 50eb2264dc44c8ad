package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPHost           string
	HTTPPort           int
	HTTPRequestTimeout time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           string
	SeedDemoData       bool
}

func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SWASTHIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5000)
	v.SetDefault("http.addr", "")
	v.SetDefault("http.request_timeout", "10s")
	v.SetDefault("shutdown.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.demo_data", true)

	_ = v.BindEnv("http.host", "SWASTHIQ_HTTP_HOST", "HTTP_HOST")
	_ = v.BindEnv("http.port", "SWASTHIQ_HTTP_PORT", "HTTP_PORT", "PORT")
	_ = v.BindEnv("http.addr", "SWASTHIQ_HTTP_ADDR", "HTTP_ADDR")
	_ = v.BindEnv("http.request_timeout", "SWASTHIQ_HTTP_REQUEST_TIMEOUT")
	_ = v.BindEnv("shutdown.timeout", "SWASTHIQ_SHUTDOWN_TIMEOUT", "SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("log.level", "SWASTHIQ_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("seed.demo_data", "SWASTHIQ_SEED_DEMO_DATA")

	requestTimeout, err := time.ParseDuration(v.GetString("http.request_timeout"))
	if err != nil {
		return Config{}, err
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("shutdown.timeout"))
	if err != nil {
		return Config{}, err
	}

	if addr := strings.TrimSpace(v.GetString("http.addr")); addr != "" {
		host, portStr, err := net.SplitHostPort(addr)
		if err == nil {
			if host != "" {
				v.Set("http.host", host)
			}
			if port, err := strconv.Atoi(portStr); err == nil {
				v.Set("http.port", port)
			}
		}
	}

	return Config{
		HTTPHost:           strings.TrimSpace(v.GetString("http.host")),
		HTTPPort:           v.GetInt("http.port"),
		HTTPRequestTimeout: requestTimeout,
		ShutdownTimeout:    shutdownTimeout,
		LogLevel:           v.GetString("log.level"),
		SeedDemoData:       v.GetBool("seed.demo_data"),
	}, nil
}
