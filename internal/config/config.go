package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	NaverClientID     string
	NaverClientSecret string
}

func Load() *Config {
	// 本地开发时从 .env 读取，容器部署时直接用进程环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "9000"),
		NaverClientID:     getEnv("NAVER_CLIENT_ID", ""),
		NaverClientSecret: getEnv("NAVER_CLIENT_SECRET", ""),
	}

	log.Printf("config loaded: port=%s naver_configured=%t",
		cfg.AppPort, cfg.NaverClientID != "" && cfg.NaverClientSecret != "")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
