package model

import "time"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// UserテーブルのレコードKVストアにJSONで保存される。
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	FullName     string    `json:"full_name"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	Roles        []string  `json:"roles"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// Normalizeは生成時の初期化を1回だけ行う。
// 保存フックではなくusecaseが作成時に明示的に呼ぶ。
func (u *User) Normalize(id string, now time.Time) {
	if u.ID == "" {
		u.ID = id
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	// 初期ロールはROLE_USER
	if len(u.Roles) == 0 {
		u.Roles = []string{RoleUser}
	}
}

// HasRoleは指定ロールを持っているかを返す
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
