// Package router はHTTPルーティングを組み立てます。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "stockwatch/internal/feature/auth/transport/handler"
	commenthandler "stockwatch/internal/feature/comments/transport/handler"
	portfoliohandler "stockwatch/internal/feature/portfolio/transport/handler"
	alerthandler "stockwatch/internal/feature/pricealerts/transport/handler"
	stockhandler "stockwatch/internal/feature/stocks/transport/handler"
	"stockwatch/internal/platform/http/handler"
	jwtmw "stockwatch/internal/platform/jwt"
)

// Handlers は各フィーチャーのHTTPハンドラーです。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Stocks    *stockhandler.StockHandler
	Portfolio *portfoliohandler.PortfolioHandler
	Alerts    *alerthandler.AlertHandler
	Comments  *commenthandler.CommentHandler
}

// Options はルーターの動作設定です。
type Options struct {
	JWTSecret   string
	ReadyChecks map[string]handler.Check
}

// NewRouter はすべてのルートを登録したgin.Engineを返します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	// ブラウザクライアントから任意のオリジンで呼び出せるようにする
	r.Use(cors.New(corsConfig()))

	// 認証不要
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(opts.ReadyChecks))
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		stocks := auth.Group("/stocks")
		stocks.POST("", h.Stocks.Create)
		stocks.GET("", h.Stocks.List)
		stocks.GET("/search", h.Stocks.Search)
		stocks.GET("/symbol/:symbol", h.Stocks.GetBySymbol)
		stocks.GET("/industry/:industry", h.Stocks.ListByIndustry)
		stocks.GET("/:id", h.Stocks.Get)
		stocks.PUT("/:id", h.Stocks.Update)
		stocks.DELETE("/:id", h.Stocks.Delete)

		portfolio := auth.Group("/portfolio")
		portfolio.POST("", h.Portfolio.Add)
		portfolio.GET("", h.Portfolio.List)
		portfolio.DELETE("/:stockId", h.Portfolio.Remove)
		portfolio.GET("/stock/:stockId", h.Portfolio.ListForStock)
		portfolio.GET("/check/:stockId", h.Portfolio.Check)

		alerts := auth.Group("/alerts")
		alerts.POST("", h.Alerts.Create)
		alerts.GET("/user/active", h.Alerts.ListActiveForUser)
		alerts.GET("/user/all", h.Alerts.ListAllForUser)
		alerts.GET("/stock/:stockId/active", h.Alerts.ListActiveForStock)
		alerts.GET("/:id", h.Alerts.Get)
		alerts.PATCH("/:id", h.Alerts.SetActive)
		alerts.POST("/:id/trigger", h.Alerts.Trigger)
		alerts.DELETE("/:id", h.Alerts.Delete)

		comments := auth.Group("/comments")
		comments.POST("", h.Comments.Create)
		comments.GET("/stock/:stockId", h.Comments.ListForStock)
		comments.GET("/stock/:stockId/count", h.Comments.CountForStock)
		comments.GET("/:id", h.Comments.Get)
		comments.PUT("/:id", h.Comments.Update)
		comments.DELETE("/:id", h.Comments.Delete)
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
