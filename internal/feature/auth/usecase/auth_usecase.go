package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"stockwatch/internal/feature/auth/domain/entity"
	"stockwatch/internal/shared/apperr"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、IDを採番します。
	// 一意キーに違反した場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ExistsByEmail はメールアドレスが登録済みかを返します。
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername はユーザー名が登録済みかを返します。
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

// validateSignup は登録内容が要件を満たしているかチェックします。
func validateSignup(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return apperr.Validation("username is required")
	}
	if strings.TrimSpace(email) == "" {
		return apperr.Validation("email is required")
	}
	if len(password) < minPasswordLength {
		return apperr.Validation(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、採番されたユーザーを返します。
// メールアドレスを先に、次にユーザー名の重複を確認します。
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	if err := validateSignup(username, email, password); err != nil {
		return nil, err
	}

	taken, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}
	taken, err = u.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	// 事前確認と挿入の間に競合した場合はストアの一意制約がErrUserAlreadyExistsを返す
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("user created", "user_id", user.ID)
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// メールアドレスとパスワードを検証し、署名済みJWTトークンを生成します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// UserExists はユーザーIDが登録済みかを返します。ポートフォリオとアラートの存在確認に使われます。
func (u *authUsecase) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
