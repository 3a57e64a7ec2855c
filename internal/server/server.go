// Package server собирает HTTP-сервер: gin-роутер, CORS,
// логирование, rate-limiting и все маршруты API.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamerhub.ru/rewards-backend/internal/config"
	"gamerhub.ru/rewards-backend/internal/features/accounts"
	"gamerhub.ru/rewards-backend/internal/features/content"
	"gamerhub.ru/rewards-backend/internal/features/market"
	"gamerhub.ru/rewards-backend/internal/features/rewards"
	"gamerhub.ru/rewards-backend/internal/features/telegram"
	"gamerhub.ru/rewards-backend/internal/features/tournaments"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handlers — все обработчики, которые монтируются в роутер.
type Handlers struct {
	Accounts    *accounts.Handler
	Rewards     *rewards.Handler
	Market      *market.Handler
	Tournaments *tournaments.Handler
	Content     *content.Handler
	Telegram    *telegram.Handler
}

// New создаёт настроенный *http.Server.
// Лимитер передаётся снаружи, чтобы main мог закрыть его на shutdown.
func New(cfg *config.Config, h *Handlers, limiter *middleware.RateLimiter) *http.Server {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Публичные маршруты
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Accounts.Register)
			auth.POST("/login", h.Accounts.Login)
		}

		contentGroup := api.Group("/content")
		{
			contentGroup.GET("/streams", h.Content.ListStreams)
			contentGroup.GET("/streams/:id", h.Content.GetStream)
			contentGroup.GET("/highlights", h.Content.ListHighlights)
		}

		api.GET("/tournaments", h.Tournaments.List)
		api.GET("/tournaments/:id", h.Tournaments.Get)
		api.GET("/market/items", h.Market.ListItems)

		// Маршруты под авторизацией и rate-limit'ом
		private := api.Group("")
		private.Use(middleware.Auth(cfg.JWTSecret), limiter.Middleware())
		{
			private.GET("/me", h.Accounts.Me)

			rewardsGroup := private.Group("/rewards")
			{
				rewardsGroup.POST("/daily-login", h.Rewards.DailyLogin)
				rewardsGroup.POST("/redeem-code", h.Rewards.RedeemCode)
				rewardsGroup.POST("/fortune-spin", h.Rewards.FortuneSpin)
			}

			private.POST("/market/items/:id/purchase", h.Market.Purchase)
			private.GET("/market/purchases", h.Market.MyPurchases)

			private.POST("/tournaments/redeem", h.Tournaments.Redeem)
			private.POST("/telegram/link", h.Telegram.StartLink)
		}
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
