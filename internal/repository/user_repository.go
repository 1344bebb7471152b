package repository

import (
	"context"
	"errors"

	"fashionretail/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID string) (*model.User, error)
	//メールからユーザーを1件取得する（フルスキャン。GSI相当の索引は持たない）。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//メールの登録済みチェック
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	//削除（存在しなくてもエラーにしない）
	Delete(ctx context.Context, userID string) error
}
