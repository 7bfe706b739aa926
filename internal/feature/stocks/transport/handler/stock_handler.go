// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/feature/stocks/domain/entity"
	"stockwatch/internal/feature/stocks/transport/http/dto"
	"stockwatch/internal/platform/http/respond"
)

// StockUsecase は銘柄カタログのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type StockUsecase interface {
	Create(ctx context.Context, in entity.NewStock) (*entity.Stock, error)
	GetByID(ctx context.Context, id uint) (*entity.Stock, error)
	GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	ListAll(ctx context.Context) ([]entity.Stock, error)
	ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error)
	SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error)
	Update(ctx context.Context, id uint, patch entity.StockPatch) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) error
}

// StockHandler は銘柄カタログのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create は銘柄を登録します。成功時は201を返します。
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create stock validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	s, err := h.uc.Create(c.Request.Context(), req.ToNewStock())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(s))
}

// Get はIDで銘柄を返します。
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	s, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

// GetBySymbol はシンボルで銘柄を返します。
func (h *StockHandler) GetBySymbol(c *gin.Context) {
	s, err := h.uc.GetBySymbol(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

// List は全銘柄を返します。
func (h *StockHandler) List(c *gin.Context) {
	ss, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ss))
}

// ListByIndustry は業種で絞り込んだ銘柄を返します。
func (h *StockHandler) ListByIndustry(c *gin.Context) {
	ss, err := h.uc.ListByIndustry(c.Request.Context(), c.Param("industry"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ss))
}

// Search は会社名の部分一致で銘柄を返します。companyNameクエリは必須です。
func (h *StockHandler) Search(c *gin.Context) {
	name, ok := c.GetQuery("companyName")
	if !ok {
		respond.BadRequest(c, "companyName is required")
		return
	}
	ss, err := h.uc.SearchByCompanyName(c.Request.Context(), name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ss))
}

// Update は銘柄を部分更新します。
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update stock validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	s, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

// Delete は銘柄を削除します。成功時は204を返します。
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
