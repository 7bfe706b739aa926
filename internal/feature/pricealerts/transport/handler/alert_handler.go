// Package handler はpricealertsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/feature/pricealerts/domain/entity"
	"stockwatch/internal/feature/pricealerts/transport/http/dto"
	"stockwatch/internal/platform/http/respond"
	jwtmw "stockwatch/internal/platform/jwt"
)

// AlertUsecase は価格アラートのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AlertUsecase interface {
	Create(ctx context.Context, in entity.NewAlert) (*entity.PriceAlert, error)
	GetByID(ctx context.Context, id uint) (*entity.PriceAlert, error)
	ListActiveForUser(ctx context.Context, userID string) ([]entity.PriceAlert, error)
	ListAllForUser(ctx context.Context, userID string) ([]entity.PriceAlert, error)
	ListActiveForStock(ctx context.Context, stockID uint) ([]entity.PriceAlert, error)
	SetActive(ctx context.Context, id uint, active bool) (*entity.PriceAlert, error)
	MarkTriggered(ctx context.Context, id uint, at time.Time) (*entity.PriceAlert, error)
	Delete(ctx context.Context, id uint) error
}

// AlertHandler は価格アラートのHTTPリクエストを処理します。
type AlertHandler struct {
	uc  AlertUsecase
	now func() time.Time
}

// NewAlertHandler は新しい AlertHandler を作成します。
func NewAlertHandler(uc AlertUsecase) *AlertHandler {
	return &AlertHandler{uc: uc, now: time.Now}
}

// Create はログインユーザーのアラートを登録します。成功時は201を返します。
func (h *AlertHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create alert validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	a, err := h.uc.Create(c.Request.Context(), req.ToNewAlert(userID))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(a))
}

// Get はIDでアラートを返します。
func (h *AlertHandler) Get(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	a, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(a))
}

// ListActiveForUser はログインユーザーの有効なアラートを返します。
func (h *AlertHandler) ListActiveForUser(c *gin.Context) {
	h.listForUser(c, h.uc.ListActiveForUser)
}

// ListAllForUser はログインユーザーの全アラートを返します。
func (h *AlertHandler) ListAllForUser(c *gin.Context) {
	h.listForUser(c, h.uc.ListAllForUser)
}

func (h *AlertHandler) listForUser(c *gin.Context, list func(context.Context, string) ([]entity.PriceAlert, error)) {
	userID, ok := jwtmw.RequireUserID(c)
	if !ok {
		return
	}
	as, err := list(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(as))
}

// ListActiveForStock は銘柄の有効なアラートを返します。
func (h *AlertHandler) ListActiveForStock(c *gin.Context) {
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	as, err := h.uc.ListActiveForStock(c.Request.Context(), stockID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(as))
}

// SetActive はクエリパラメータisActiveでアラートの有効・無効を切り替えます。
func (h *AlertHandler) SetActive(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	active, err := strconv.ParseBool(c.Query("isActive"))
	if err != nil {
		respond.BadRequest(c, "invalid isActive")
		return
	}
	a, err := h.uc.SetActive(c.Request.Context(), id, active)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(a))
}

// Trigger は外部の評価器がアラート条件の成立を記録するためのエンドポイントです。
// 価格の比較はここでは行いません。
func (h *AlertHandler) Trigger(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("trigger alert validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	at := h.now()
	if req.TriggeredAt != nil {
		at = *req.TriggeredAt
	}
	a, err := h.uc.MarkTriggered(c.Request.Context(), id, at)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(a))
}

// Delete はアラートを削除します。成功時は204を返します。
func (h *AlertHandler) Delete(c *gin.Context) {
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
