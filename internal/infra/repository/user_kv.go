package repository

import (
	"context"
	"encoding/json"
	"errors"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	domainrepo "fashionretail/internal/repository"
)

type userKVRepository struct {
	table kv.Table
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserRepository(table kv.Table) domainrepo.UserRepository {
	return &userKVRepository{table: table}
}

func (r *userKVRepository) Create(ctx context.Context, user *model.User) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.table.Put(ctx, user.ID, "", doc)
}

// IDでユーザーを1件取得
func (r *userKVRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	doc, err := r.table.Get(ctx, userID, "")
	if errors.Is(err, kv.ErrItemNotFound) {
		return nil, domainrepo.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var u model.User
	if err := json.Unmarshal(doc, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// emailでユーザーを1件取得。
// email用の索引は無いのでフルスキャンして一致を探す（大文字小文字は区別）。
func (r *userKVRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		var u model.User
		if err := json.Unmarshal(it.Doc, &u); err != nil {
			return nil, err
		}
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainrepo.ErrUserNotFound
}

func (r *userKVRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domainrepo.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ユーザーを更新（put上書き）。
func (r *userKVRepository) Update(ctx context.Context, user *model.User) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.table.Put(ctx, user.ID, "", doc)
}

func (r *userKVRepository) Delete(ctx context.Context, userID string) error {
	return r.table.Delete(ctx, userID, "")
}
