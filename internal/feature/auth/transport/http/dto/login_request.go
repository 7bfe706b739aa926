package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResp はログイン成功時に発行されたJWTを返します。
type TokenResp struct {
	Token string `json:"token"`
}
