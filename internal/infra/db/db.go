package db

import (
	"fmt"
	"time"

	"github.com/StikhanovKonstantin/ya-note/config"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 根据配置选择驱动：本地/测试用 sqlite，线上用 mysql
func Open(cfg *config.Config) *gorm.DB {
	// 配置 GORM 日志，根据 Env 决定级别
	var gormLogger logger.Interface
	if cfg.AppEnv == "dev" {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	gormCfg := &gorm.Config{
		Logger: gormLogger,
		// 把驱动的唯一键冲突翻译成 gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	}
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}

	if cfg.DBDriver == "mysql" {
		// 设置连接池 (生产环境必备)
		sqlDB, _ := db.DB()
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	zap.L().Info("database connected", zap.String("driver", cfg.DBDriver))
	return db
}
