// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/feature/comments/domain/entity"
	"stockwatch/internal/feature/comments/transport/http/dto"
	"stockwatch/internal/platform/http/respond"
)

// CommentUsecase は銘柄コメントのユースケースを定義します。
type CommentUsecase interface {
	Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error)
	GetByID(ctx context.Context, id uint) (*entity.Comment, error)
	ListForStock(ctx context.Context, stockID uint) ([]entity.Comment, error)
	CountForStock(ctx context.Context, stockID uint) (int64, error)
	Update(ctx context.Context, id uint, patch entity.CommentPatch) (*entity.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler は新しい CommentHandler を作成します。
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create はコメントを登録します。成功時は201を返します。
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create comment validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	cm, err := h.uc.Create(c.Request.Context(), req.StockID, req.Title, req.Content)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntity(cm))
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	cm, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(cm))
}

// ListForStock は銘柄のコメントを新しい順に返します。
func (h *CommentHandler) ListForStock(c *gin.Context) {
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	cs, err := h.uc.ListForStock(c.Request.Context(), stockID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(cs))
}

func (h *CommentHandler) CountForStock(c *gin.Context) {
	stockID, ok := respond.UintParam(c, "stockId")
	if !ok {
		return
	}
	n, err := h.uc.CountForStock(c.Request.Context(), stockID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{StockID: stockID, Count: n})
}

// Update はコメントを部分更新します。
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := respond.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update comment validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	cm, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(cm))
}

// Delete はコメントを削除します。成功時は204を返します。
func (h *CommentHandler) Delete(c *gin.Context) {
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
