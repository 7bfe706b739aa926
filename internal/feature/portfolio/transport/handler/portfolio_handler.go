// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/feature/portfolio/domain/entity"
	"stockwatch/internal/feature/portfolio/transport/http/dto"
	"stockwatch/internal/platform/http/respond"
	jwtmw "stockwatch/internal/platform/jwt"
)

// PortfolioUsecase はポートフォリオ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PortfolioUsecase interface {
	Add(ctx context.Context, userID string, stockID uint) (*entity.Membership, error)
	Remove(ctx context.Context, userID string, stockID uint) error
	ListForUser(ctx context.Context, userID string) ([]entity.Membership, error)
	ListForStock(ctx context.Context, stockID uint) ([]entity.Membership, error)
	Exists(ctx context.Context, userID string, stockID uint) bool
}

// PortfolioHandler はログインユーザーのポートフォリオを扱います。
// ユーザーIDは常にJWTから取得します。
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler は新しい PortfolioHandler を作成します。
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// Add は銘柄をポートフォリオに追加します。成功時は201を返します。
func (h *PortfolioHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	var req dto.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add portfolio validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	m, err := h.uc.Add(c.Request.Context(), userID, req.StockID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(m))
}

// List はログインユーザーのポートフォリオを返します。
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	ms, err := h.uc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ms))
}

// Remove は銘柄をポートフォリオから外します。成功時は204を返します。
func (h *PortfolioHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	if err := h.uc.Remove(c.Request.Context(), userID, stockID); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListForStock は銘柄を保有する全ユーザーのメンバーシップを返します。
func (h *PortfolioHandler) ListForStock(c *gin.Context) {
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	ms, err := h.uc.ListForStock(c.Request.Context(), stockID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ms))
}

// Check はログインユーザーが銘柄を保有しているかを返します。
func (h *PortfolioHandler) Check(c *gin.Context) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: h.uc.Exists(c.Request.Context(), userID, stockID)})
}
