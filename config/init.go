package config

import (
	"context"
	"fmt"
	"log"

	"ratecard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App gom các thành phần dùng chung của server
type App struct {
	Settings Settings
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Melody   *melody.Melody
	Cron     *cron.Cron
}

func InitApp(ctx context.Context) (*App, error) {
	_ = LoadEnv()
	settings := LoadSettings()

	router := NewRouter()

	db, err := ConnectDB(settings.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb, err := ConnectRedis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("All components initialized successfully")
	return &App{
		Settings: settings,
		Router:   router,
		DB:       db,
		Redis:    rdb,
		Melody:   melody.New(),
		Cron:     cron.New(),
	}, nil
}

// NewRouter tạo gin engine với CORS, request id và error handler
func NewRouter() *gin.Engine {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.Use(middleware.RequestID(), middleware.ErrorHandler())

	_ = router.SetTrustedProxies(nil)
	return router
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		_ = m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
