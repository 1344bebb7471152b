package kv

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_recordsの1行。(table_name, pk, sk) が複合主キー。
type record struct {
	Table     string         `gorm:"column:table_name;primaryKey;type:varchar(64)"`
	PK        string         `gorm:"column:pk;primaryKey;type:varchar(255)"`
	SK        string         `gorm:"column:sk;primaryKey;type:varchar(255)"`
	Doc       datatypes.JSON `gorm:"column:doc;not null"`
}

func (record) TableName() string {
	return "kv_records"
}

// AutoMigrateはkv_recordsテーブルを作る。mainで1回呼ぶ。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&record{})
}

// GormTableはPostgres上のKVテーブル実装。
// 1つのSQLテーブルに論理テーブル名で相乗りする。
type GormTable struct {
	db   *gorm.DB
	name string
}

func NewGormTable(db *gorm.DB, name string) *GormTable {
	return &GormTable{db: db, name: name}
}

func (t *GormTable) Get(ctx context.Context, pk string, sk string) ([]byte, error) {
	var r record
	err := t.db.WithContext(ctx).
		Where("table_name = ? AND pk = ? AND sk = ?", t.name, pk, sk).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(r.Doc), nil
}

func (t *GormTable) Put(ctx context.Context, pk string, sk string, doc []byte) error {
	r := record{
		Table:     t.name,
		PK:        pk,
		SK:        sk,
		Doc:       datatypes.JSON(doc),
	}

	//同一キーは上書き（DynamoDBのputItem相当）
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "table_name"}, {Name: "pk"}, {Name: "sk"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc"}),
	}).Create(&r).Error
}

func (t *GormTable) Delete(ctx context.Context, pk string, sk string) error {
	//0件削除もエラーにしない
	return t.db.WithContext(ctx).
		Where("table_name = ? AND pk = ? AND sk = ?", t.name, pk, sk).
		Delete(&record{}).Error
}

func (t *GormTable) Scan(ctx context.Context) ([]Item, error) {
	var rows []record
	err := t.db.WithContext(ctx).
		Where("table_name = ?", t.name).
		Order("pk asc").Order("sk asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{PK: r.PK, SK: r.SK, Doc: []byte(r.Doc)})
	}
	return items, nil
}
