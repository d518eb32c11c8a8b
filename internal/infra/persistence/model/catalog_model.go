package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table. Top-level categories carry
// an empty parent id.
type CategoryModel struct {
	ID        string `gorm:"type:varchar(64);primary_key"`
	ParentID  string `gorm:"type:varchar(64);index"`
	Name      string `gorm:"type:varchar(100);not null"`
	SortOrder int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Variants are stored as JSONB
// since they are always read together with the product.
type ProductModel struct {
	ID          string         `gorm:"type:varchar(64);primary_key"`
	CategoryID  string         `gorm:"type:varchar(64);index;not null"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Price       int64          `gorm:"not null;default:0"`
	Stock       int            `gorm:"not null;default:0"`
	Variants    datatypes.JSON `gorm:"type:jsonb"`
	Active      bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BatchDiscountModel mirrors the 'batch_discounts' table.
type BatchDiscountModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Version       int            `gorm:"not null;default:1"`
	Category      string         `gorm:"type:varchar(40);index;not null"`
	ProductIDs    datatypes.JSON `gorm:"type:jsonb"`
	DiscountPrice int64          `gorm:"not null"`
	Active        bool           `gorm:"not null;default:true"`
	StartsAt      time.Time
	EndsAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BatchDiscountModel) TableName() string {
	return "batch_discounts"
}
