package domain

import "time"

type Review struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProductID string `gorm:"size:36;index;not null" json:"productId"`
	UserID    string `gorm:"size:36;index;not null" json:"userId"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Review) TableName() string { return "reviews" }

// RatingCount is one row of the grouped review histogram.
type RatingCount struct {
	ProductID string
	Rating    int
	Count     int
}

type ReviewRepository interface {
	Create(r *Review) error
	// CountByProductRating groups reviews by (product, rating) across all products.
	CountByProductRating() ([]RatingCount, error)
}
