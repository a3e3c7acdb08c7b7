package svc

import (
	"github.com/StikhanovKonstantin/ya-note/config"
	"github.com/StikhanovKonstantin/ya-note/internal/infra/cache"
	"github.com/StikhanovKonstantin/ya-note/internal/infra/db"
	"github.com/StikhanovKonstantin/ya-note/internal/models"
	"github.com/StikhanovKonstantin/ya-note/internal/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  *cache.RedisCache // 可以为 nil，相关功能降级
	Notes  store.NoteStore
	Users  store.UserStore
}

// NewServiceContext 这里是所有初始化的总入口
func NewServiceContext(cfg *config.Config) *ServiceContext {
	dbConn := db.Open(cfg)

	if err := dbConn.AutoMigrate(&models.User{}, &models.Note{}); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	rdb, err := cache.New(cfg)
	if err != nil {
		zap.L().Warn("Redis connection failed, continuing without Redis", zap.Error(err))
		rdb = nil
	} else {
		zap.L().Info("Redis connected successfully")
	}

	return &ServiceContext{
		Config: cfg,
		DB:     dbConn,
		Cache:  rdb,
		Notes:  store.NewNoteStore(dbConn),
		Users:  store.NewUserStore(dbConn),
	}
}
