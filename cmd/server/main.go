package main

import (
	"github.com/motorent/internal/config"
	"github.com/motorent/internal/handler"
	"github.com/motorent/internal/ledger"
	"github.com/motorent/internal/logger"
	"github.com/motorent/internal/router"
	"github.com/motorent/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.Init()
	log := logger.Get()
	defer log.Sync()

	// 初始化资产台账数据库
	if err := ledger.Init(cfg.LedgerPath); err != nil {
		log.Fatal("failed to initialize asset ledger", zap.Error(err))
	}

	// 面向内容存储的基础客户端，公开读取不携带令牌
	client := store.New(cfg.ContentAPIBase)

	api := handler.NewAPI(cfg, client, ledger.DB)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg, api)
	log.Info("motorent server listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("failed to run server", zap.Error(err))
	}
}
