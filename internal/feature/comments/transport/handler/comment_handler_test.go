package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/feature/comments/domain/entity"
	"stockwatch/internal/feature/comments/usecase"
)

type mockCommentUsecase struct {
	CreateFunc        func(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error)
	GetByIDFunc       func(ctx context.Context, id uint) (*entity.Comment, error)
	ListForStockFunc  func(ctx context.Context, stockID uint) ([]entity.Comment, error)
	CountForStockFunc func(ctx context.Context, stockID uint) (int64, error)
	UpdateFunc        func(ctx context.Context, id uint, patch entity.CommentPatch) (*entity.Comment, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockCommentUsecase) Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
	return m.CreateFunc(ctx, stockID, title, content)
}

func (m *mockCommentUsecase) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockCommentUsecase) ListForStock(ctx context.Context, stockID uint) ([]entity.Comment, error) {
	return m.ListForStockFunc(ctx, stockID)
}

func (m *mockCommentUsecase) CountForStock(ctx context.Context, stockID uint) (int64, error) {
	return m.CountForStockFunc(ctx, stockID)
}

func (m *mockCommentUsecase) Update(ctx context.Context, id uint, patch entity.CommentPatch) (*entity.Comment, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockCommentUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

var createdAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

const commentJSON = `{"id":3,"stockId":1,"title":"Q1","content":"beat","createdAt":"2024-03-01T09:30:00Z"}`

func comment() *entity.Comment {
	return &entity.Comment{ID: 3, StockID: 1, Title: "Q1", Content: "beat", CreatedAt: createdAt}
}

func newRouter(uc CommentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCommentHandler(uc)
	r.POST("/comments", h.Create)
	r.GET("/comments/stock/:stockId", h.ListForStock)
	r.GET("/comments/stock/:stockId/count", h.CountForStock)
	r.GET("/comments/:id", h.Get)
	r.PUT("/comments/:id", h.Update)
	r.DELETE("/comments/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_Create(t *testing.T) {
	uc := &mockCommentUsecase{CreateFunc: func(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
		if stockID != 1 {
			return nil, usecase.ErrStockNotFound
		}
		return comment(), nil
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/comments", `{"stockId":1,"title":"Q1","content":"beat"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, commentJSON, w.Body.String())

	w = do(r, http.MethodPost, "/comments", `{"stockId":9,"title":"Q1","content":"beat"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"stock not found"}`, w.Body.String())

	w = do(r, http.MethodPost, "/comments", `{"stockId":1,"content":"beat"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_Reads(t *testing.T) {
	uc := &mockCommentUsecase{
		GetByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
			if id == 3 {
				return comment(), nil
			}
			return nil, usecase.ErrCommentNotFound
		},
		ListForStockFunc: func(ctx context.Context, stockID uint) ([]entity.Comment, error) {
			return []entity.Comment{*comment()}, nil
		},
		CountForStockFunc: func(ctx context.Context, stockID uint) (int64, error) {
			return 4, nil
		},
	}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/comments/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, commentJSON, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/comments/4", "").Code)

	w = do(r, http.MethodGet, "/comments/stock/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "["+commentJSON+"]", w.Body.String())

	w = do(r, http.MethodGet, "/comments/stock/1/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stockId":1,"count":4}`, w.Body.String())
}

func TestCommentHandler_Update(t *testing.T) {
	var got entity.CommentPatch
	uc := &mockCommentUsecase{UpdateFunc: func(ctx context.Context, id uint, patch entity.CommentPatch) (*entity.Comment, error) {
		got = patch
		c := comment()
		c.Apply(patch)
		return c, nil
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPut, "/comments/3", `{"content":"missed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got.Title)
	require.NotNil(t, got.Content)
	assert.Equal(t, "missed", *got.Content)
	assert.Contains(t, w.Body.String(), `"title":"Q1"`)
}

func TestCommentHandler_Delete(t *testing.T) {
	uc := &mockCommentUsecase{DeleteFunc: func(ctx context.Context, id uint) error {
		if id == 3 {
			return nil
		}
		return usecase.ErrCommentNotFound
	}}
	r := newRouter(uc)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/comments/3", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/comments/4", "").Code)
}
