package main

import (
	"log"

	"github.com/LJTian/StockNewsHub/internal/api"
	"github.com/LJTian/StockNewsHub/internal/collector"
	"github.com/LJTian/StockNewsHub/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// 凭据缺失不算启动失败：/article 不依赖 Naver，
	// 搜索类接口会在调用前报 config_error
	if cfg.NaverClientID == "" || cfg.NaverClientSecret == "" {
		log.Println("warn: NAVER_CLIENT_ID / NAVER_CLIENT_SECRET not set, search endpoints will fail")
	}

	searcher := collector.NewNaverClient(cfg.NaverClientID, cfg.NaverClientSecret)
	extractor := collector.NewArticleCollector()

	r := gin.Default()
	r.Use(api.CORSMiddleware())

	apiServer := api.NewServer(searcher, extractor)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
