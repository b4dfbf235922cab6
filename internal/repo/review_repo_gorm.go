package repo

import (
	"gorm.io/gorm"

	"go-shop-admin/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rv *domain.Review) error { return r.db.Create(rv).Error }

func (r *ReviewRepo) CountByProductRating() ([]domain.RatingCount, error) {
	var rows []domain.RatingCount
	err := r.db.Model(&domain.Review{}).
		Select("product_id, rating, COUNT(*) AS count").
		Group("product_id, rating").
		Scan(&rows).Error
	return rows, err
}
