package server

import "os"

// Config holds server configuration
type Config struct {
	Port         string
	LogLevel     string
	FundDataPath string
	SavingsPath  string
	MarketPath   string
	RedisAddr    string
}

// NewConfig loads configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		FundDataPath: getEnv("FUND_DATA_PATH", "data/fund_data.json"),
		SavingsPath:  getEnv("SAVINGS_DATA_PATH", "data/saving_data.csv"),
		MarketPath:   getEnv("MARKET_DATA_PATH", "data/market_price.yaml"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
