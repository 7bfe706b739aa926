// Package respond はエラー種別をHTTPステータスへ変換してレスポンスを返します。
package respond

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/shared/apperr"
)

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// Status はerrの種別に対応するHTTPステータスコードを返します。
func Status(err error) int {
	switch apperr.Kind(err) {
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error はerrをJSONエラーレスポンスとして書き込みます。
// 種別外のエラーは内容を公開せず500を返します。
func Error(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath())
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// BadRequest はバインドやパスパラメータの解析に失敗した場合の400レスポンスを書き込みます。
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// UintParam はパスパラメータnameを正の整数として解析します。
// 解析できない場合は400を書き込み、falseを返します。
func UintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
