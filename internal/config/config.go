package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	UserAddress         string `env:"USER_ADDRESS"         envDefault:":3001"`
	ProductAddress      string `env:"PRODUCT_ADDRESS"      envDefault:":3002"`
	OrderAddress        string `env:"ORDER_ADDRESS"        envDefault:":3003"`
	NotificationAddress string `env:"NOTIFICATION_ADDRESS" envDefault:":3004"`

	ProductServiceURL      string `env:"PRODUCT_SERVICE_ADDRESS"      envDefault:"http://product-service:3002"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_ADDRESS" envDefault:"http://notification-service:3004"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"your-secret-key"`
	LogLvl    string `env:"LOG_LVL"    envDefault:"info"`
}

func New() *Config {
	godotenv.Load()

	cfg := &Config{}
	env.Parse(cfg)

	flag.StringVar(&cfg.ProductServiceURL, "p", cfg.ProductServiceURL, "product service address")
	flag.StringVar(&cfg.NotificationServiceURL, "n", cfg.NotificationServiceURL, "notification service address")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	cfg.ProductServiceURL = withScheme(cfg.ProductServiceURL)
	cfg.NotificationServiceURL = withScheme(cfg.NotificationServiceURL)

	return cfg
}

func withScheme(addr string) string {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		return "http://" + addr
	}
	return addr
}
