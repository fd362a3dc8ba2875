package main

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"time"
)

var flagRunAddr string
var flagLogLevel string
var flagGatewayURL string
var flagGatewayToken string
var flagGatewayTimeout time.Duration

func parseFlags() {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagGatewayURL, "g", "https://gatewayapi.eu/rest/mtsms", "SMS gateway URL")
	flag.StringVar(&flagGatewayToken, "t", "", "SMS gateway token")
	flag.DurationVar(&flagGatewayTimeout, "T", 0, "SMS gateway timeout, 0 for none")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envGatewayURL := os.Getenv("GATEWAYAPI_URL"); envGatewayURL != "" {
		flagGatewayURL = envGatewayURL
	}

	if envGatewayTimeout := os.Getenv("GATEWAYAPI_TIMEOUT"); envGatewayTimeout != "" {
		if d, err := time.ParseDuration(envGatewayTimeout); err == nil {
			flagGatewayTimeout = d
		}
	}
}

// gatewayToken is read on every send so a rotated token is picked up without a restart.
func gatewayToken() string {
	if envToken := os.Getenv("GATEWAYAPI_TOKEN"); envToken != "" {
		return envToken
	}
	return flagGatewayToken
}
