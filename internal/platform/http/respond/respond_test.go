package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockwatch/internal/shared/apperr"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: apperr.New(apperr.ErrNotFound, "stock not found"), want: http.StatusNotFound},
		{name: "wrapped conflict", err: fmt.Errorf("%w: ACME", apperr.New(apperr.ErrConflict, "taken")), want: http.StatusConflict},
		{name: "validation", err: apperr.Validation("bad"), want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

// TestError は種別外のエラー内容がレスポンスに含まれないことを検証します。
func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "taxonomy error exposes message",
			err:        apperr.New(apperr.ErrNotFound, "stock not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"stock not found"}`,
		},
		{
			name:       "internal error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) { Error(c, tt.err) })

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/x", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/items/42", wantStatus: http.StatusOK, wantBody: `{"id":42}`},
		{path: "/items/0", wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid id"}`},
		{path: "/items/-1", wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid id"}`},
		{path: "/items/abc", wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid id"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			router := gin.New()
			router.GET("/items/:id", func(c *gin.Context) {
				id, ok := UintParam(c, "id")
				if !ok {
					return
				}
				c.JSON(http.StatusOK, gin.H{"id": id})
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
