package domain

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:128;not null" json:"name"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Name       string  `gorm:"size:128;not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	Stock      int     `gorm:"not null;default:0" json:"stock"`
	CategoryID string  `gorm:"size:36;index" json:"categoryId"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// ProductDetail is the public listing shape: product joined with its
// category name and review statistics.
type ProductDetail struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	Category      string  `json:"category"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
	OneStar       int     `json:"1star"`
	TwoStar       int     `json:"2star"`
	ThreeStar     int     `json:"3star"`
	FourStar      int     `json:"4star"`
	FiveStar      int     `json:"5star"`
}

// CategoryDetail is the public category view with its products inlined.
type CategoryDetail struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
}

type CategoryRepository interface {
	Create(c *Category) error
	FindByID(id string) (*Category, error)
	ListAll() ([]Category, error)
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	// UpdateFields applies a partial patch; (nil, nil) when not found.
	UpdateFields(id string, fields map[string]any) (*Product, error)
	// SoftDelete reports whether a live product with id existed.
	SoftDelete(id string) (bool, error)
	ListAll() ([]Product, error)
	ListOutOfStock() ([]Product, error)
}
