package entities

import (
	"bytes"
	"encoding/gob"
	"slices"
	"time"
)

type Category string

const (
	CategoryTop   Category = "top"
	CategoryOuter Category = "outer"
	CategoryPants Category = "pants"
	CategoryShoes Category = "shoes"
)

var subCategories = map[Category][]string{
	CategoryTop:   {"shirts", "blouse", "knit", "sweater", "hood", "sleeveless"},
	CategoryOuter: {"hood", "mustang", "suite", "cardigan", "coat", "padding"},
	CategoryPants: {"cotton", "denim", "slacks", "sports"},
	CategoryShoes: {"roper", "sandal", "slipper", "boots", "snickers"},
}

func (c Category) Valid() bool {
	_, ok := subCategories[c]
	return ok
}

// HasSubCategory проверяет, что подкатегория относится к категории.
func (c Category) HasSubCategory(sub string) bool {
	return slices.Contains(subCategories[c], sub)
}

type Gender string

const (
	GenderMan    Gender = "man"
	GenderWoman  Gender = "woman"
	GenderUnisex Gender = "unisex"
)

type Item struct {
	ID            int64
	Code          string
	Name          string
	Description   string
	Category      Category
	SubCategory   string
	Gender        Gender
	Size          string
	Price         int64
	StockQuantity int
	SalesCount    int
	Attributes    map[string]string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ItemFilter struct {
	Category Category
	Keyword  string
	Gender   Gender
	MinPrice int64
	MaxPrice int64
	Size     string
}

// StockDelta - изменение остатка и счетчика продаж одной позиции каталога.
type StockDelta struct {
	ItemID int64
	Stock  int
	Sales  int
}

func (i *Item) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(i); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i *Item) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(i)
}

func init() {
	gob.Register(Item{})
}
