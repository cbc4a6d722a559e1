package app

import (
	"Gin_postgres_library_loans/db"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Config Config
}

// Config 从环境变量读取
type Config struct {
	WebOrigin string
	StaticDir string
}

func MustNew() *App {
	cfg := loadConfig()

	// --- DB ---
	dbConn := db.ConnectDB()

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	if cfg.StaticDir != "" {
		useStatic(r, cfg.StaticDir)
	}

	return &App{Router: r, DB: dbConn, Config: cfg}
}

func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	return Config{
		WebOrigin: strings.TrimRight(get("WEB_ORIGIN", "http://localhost:5173"), "/"),
		StaticDir: os.Getenv("STATIC_DIR"),
	}
}
