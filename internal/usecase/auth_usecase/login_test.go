package auth

import (
	"context"
	"testing"
	"time"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/repository"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// テスト用の固定トークン発行器
type stubIssuer struct{}

func (s *stubIssuer) Issue(userID string, roles []string, now time.Time) (string, time.Time, error) {
	return "token-for-" + userID, now.Add(15 * time.Minute), nil
}

func hashForTest(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func newLoginUsecaseForTest(userRepo *MockUserRepository) *LoginUsecase {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewLoginUsecase(userRepo, NewBcryptPasswordVerifier(), &stubIssuer{}, &stubClock{now: now})
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hashForTest(t, "correct horse"),
		Roles:        []string{model.RoleUser},
		Enabled:      true,
	}, nil)

	out, err := uc.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "correct horse"})
	assert.NoError(t, err)
	assert.Equal(t, "token-for-user-1", out.Token.AccessToken)
	assert.Equal(t, 15*60, out.Token.ExpiresIn)
	assert.Empty(t, out.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&model.User{
		ID:           "user-1",
		PasswordHash: hashForTest(t, "correct horse"),
		Enabled:      true,
	}, nil)

	_, err := uc.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := newLoginUsecaseForTest(userRepo)

	//存在しないemailも「認証失敗」に寄せる
	userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := uc.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := newLoginUsecaseForTest(userRepo)

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&model.User{
		ID:           "user-1",
		PasswordHash: hashForTest(t, "correct horse"),
		Enabled:      false,
	}, nil)

	_, err := uc.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}
