// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/feature/auth/domain/entity"
	"stockwatch/internal/feature/auth/transport/http/dto"
	"stockwatch/internal/feature/auth/usecase"
	"stockwatch/internal/platform/http/respond"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、採番されたユーザーを返します。
	Signup(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレスまたはユーザー名の重複時は409を返却
// - 成功時は201と登録されたユーザーを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupResp{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		// ユーザー列挙攻撃を防止するため、失敗理由を区別しない
		slog.Warn("login failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, respond.ErrorResponse{Error: "invalid email or password"})
		return
	}
	if err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{Token: token})
}
