package kv

import (
	"context"
	"sync"
)

// MemoryTableはテスト・ローカル用のインメモリ実装。
// Scanは挿入順を保つ（ベストエフォート）。
type MemoryTable struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	order []string // 挿入順のキー
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{docs: make(map[string][]byte)}
}

func memKey(pk string, sk string) string {
	return pk + "\x00" + sk
}

func (t *MemoryTable) Get(_ context.Context, pk string, sk string) ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	doc, ok := t.docs[memKey(pk, sk)]
	if !ok {
		return nil, ErrItemNotFound
	}

	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, nil
}

func (t *MemoryTable) Put(_ context.Context, pk string, sk string, doc []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := memKey(pk, sk)
	if _, exists := t.docs[key]; !exists {
		t.order = append(t.order, key)
	}

	cp := make([]byte, len(doc))
	copy(cp, doc)
	t.docs[key] = cp
	return nil
}

func (t *MemoryTable) Delete(_ context.Context, pk string, sk string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := memKey(pk, sk)
	if _, exists := t.docs[key]; !exists {
		return nil
	}
	delete(t.docs, key)

	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *MemoryTable) Scan(_ context.Context) ([]Item, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items := make([]Item, 0, len(t.order))
	for _, key := range t.order {
		doc := t.docs[key]
		cp := make([]byte, len(doc))
		copy(cp, doc)

		pk, sk := splitMemKey(key)
		items = append(items, Item{PK: pk, SK: sk, Doc: cp})
	}
	return items, nil
}

func splitMemKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
