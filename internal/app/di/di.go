// Package di はアプリケーションのコンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stockwatch/internal/app/router"
	authadapters "stockwatch/internal/feature/auth/adapters"
	authhandler "stockwatch/internal/feature/auth/transport/handler"
	authusecase "stockwatch/internal/feature/auth/usecase"
	commentadapters "stockwatch/internal/feature/comments/adapters"
	commenthandler "stockwatch/internal/feature/comments/transport/handler"
	commentusecase "stockwatch/internal/feature/comments/usecase"
	portfolioadapters "stockwatch/internal/feature/portfolio/adapters"
	portfoliohandler "stockwatch/internal/feature/portfolio/transport/handler"
	portfoliousecase "stockwatch/internal/feature/portfolio/usecase"
	alertadapters "stockwatch/internal/feature/pricealerts/adapters"
	alerthandler "stockwatch/internal/feature/pricealerts/transport/handler"
	alertusecase "stockwatch/internal/feature/pricealerts/usecase"
	stockadapters "stockwatch/internal/feature/stocks/adapters"
	stockhandler "stockwatch/internal/feature/stocks/transport/handler"
	stockusecase "stockwatch/internal/feature/stocks/usecase"
	"stockwatch/internal/platform/cache"
	jwtmw "stockwatch/internal/platform/jwt"
)

// Models はAutoMigrateの対象となるすべてのGORMモデルです。
func Models() []any {
	return []any{
		&authadapters.UserModel{},
		&stockadapters.StockModel{},
		&portfolioadapters.MembershipModel{},
		&alertadapters.AlertModel{},
		&commentadapters.CommentModel{},
	}
}

// Deps はハンドラーの組み立てに必要な外部リソースです。
// Redisがnilの場合はキャッシュなしで動作します。
type Deps struct {
	DB        *gorm.DB
	Redis     *redis.Client
	CacheTTL  time.Duration
	JWTSecret string
	JWTExpiry time.Duration
	Events    alertusecase.EventPublisher
}

// NewStockRepository はStockRepositoryの実装を生成します。
// Redisが利用可能であればキャッシュでラップし、そうでなければデータベースを直接使います。
func NewStockRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) stockusecase.StockRepository {
	repo := stockadapters.NewStockRepository(db)
	if rdb != nil {
		return cache.NewCachingStockRepository(rdb, ttl, repo, "stocks")
	}
	return repo
}

// NewHandlers はリポジトリ、ユースケース、ハンドラーの順に組み立てます。
func NewHandlers(d Deps) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserRepository(d.DB)
	stockRepo := NewStockRepository(d.Redis, d.DB, d.CacheTTL)
	membershipRepo := portfolioadapters.NewMembershipRepository(d.DB)
	alertRepo := alertadapters.NewAlertRepository(d.DB)
	commentRepo := commentadapters.NewCommentRepository(d.DB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(d.JWTSecret, d.JWTExpiry))
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(membershipRepo, authUC, stockUC)
	alertUC := alertusecase.NewAlertUsecase(alertRepo, authUC, stockUC, d.Events)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, stockUC)

	// Handler
	return router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Stocks:    stockhandler.NewStockHandler(stockUC),
		Portfolio: portfoliohandler.NewPortfolioHandler(portfolioUC),
		Alerts:    alerthandler.NewAlertHandler(alertUC),
		Comments:  commenthandler.NewCommentHandler(commentUC),
	}
}
