package kv

import (
	"context"
	"errors"
)

// キーに対応するレコードが無い
var ErrItemNotFound = errors.New("item not found")

// Scanが返す1件分。
type Item struct {
	PK  string
	SK  string
	Doc []byte
}

// Tableはエンティティ1種類ぶんのKVテーブル。
// パーティションキー（＋必要ならソートキー）での直接アクセスと
// フルスキャンだけを約束する。二次索引は無い。
type Table interface {
	Get(ctx context.Context, pk string, sk string) ([]byte, error)
	Put(ctx context.Context, pk string, sk string, doc []byte) error
	// 無くてもエラーにしない。
	Delete(ctx context.Context, pk string, sk string) error
	Scan(ctx context.Context) ([]Item, error)
}
