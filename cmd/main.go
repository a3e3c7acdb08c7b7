package main

import (
	"github.com/StikhanovKonstantin/ya-note/config"
	"github.com/StikhanovKonstantin/ya-note/internal/router"
	"github.com/StikhanovKonstantin/ya-note/internal/svc"
	"github.com/StikhanovKonstantin/ya-note/internal/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	utils.InitLogger(cfg.AppEnv)

	s := svc.NewServiceContext(cfg)
	r := router.New(s)

	addr := ":" + cfg.ServerPort
	zap.L().Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
