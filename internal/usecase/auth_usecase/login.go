package auth

import (
	"context"
	"errors"
	"time"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// token 形（JwtAccessToken相当）
type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	User  model.User     `json:"user"`
	Token JwtAccessToken `json:"token"`
}

var (
	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
	// 停止済みユーザー
	ErrAccountDisabled = errors.New("account disabled")
)

// 平文とハッシュの照合を約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// アクセストークンの発行を約束。実装はmain.goのJWT issuer。
type TokenIssuer interface {
	Issue(userID string, roles []string, now time.Time) (string, time.Time, error)
}

// LoginUsecaseはログイン（認証＋トークン発行）の処理。
type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	// emailでユーザーを探す。
	// 見つからない場合も「認証失敗」に寄せて存在を教えない。
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	// パスワード照合
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, ErrInvalidCredentials
	}

	// 停止済みは拒否
	if !user.Enabled {
		return out, ErrAccountDisabled
	}

	// アクセストークン発行
	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Roles, now)
	if err != nil {
		return out, err
	}

	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	out.Token = JwtAccessToken{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
	}
	return out, nil
}
