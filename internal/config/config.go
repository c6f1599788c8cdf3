package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Page   PageConfig
}

type ServerConfig struct {
	Host string // defaults to 0.0.0.0
	Port int    // defaults to 8080
}

type EngineConfig struct {
	UtilizationWeight float64 // defaults to 0.4
	CroppingWeight    float64 // defaults to 0.4
	BalanceWeight     float64 // defaults to 0.2
	StrictPrecision   int     // decimal places of the strict dedup signature, defaults to 6
	SplitRatio        float64 // first-region fraction of two-region splits, defaults to 0.5
}

type PageConfig struct {
	Width  float64 // default page width, defaults to 297 (A4 landscape, mm)
	Height float64 // default page height, defaults to 210
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns the default value if the env var is unset, empty, or invalid.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envString("COLLAGE_SERVER_HOST", "0.0.0.0"),
			Port: envInt("COLLAGE_SERVER_PORT", 8080),
		},
		Engine: EngineConfig{
			UtilizationWeight: envFloat("COLLAGE_WEIGHT_UTILIZATION", 0.4),
			CroppingWeight:    envFloat("COLLAGE_WEIGHT_CROPPING", 0.4),
			BalanceWeight:     envFloat("COLLAGE_WEIGHT_BALANCE", 0.2),
			StrictPrecision:   envInt("COLLAGE_STRICT_PRECISION", 6),
			SplitRatio:        envFloat("COLLAGE_SPLIT_RATIO", 0.5),
		},
		Page: PageConfig{
			Width:  envFloat("COLLAGE_PAGE_WIDTH", 297),
			Height: envFloat("COLLAGE_PAGE_HEIGHT", 210),
		},
	}
}
