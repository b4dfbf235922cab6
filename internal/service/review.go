package service

import (
	"math"
	"strings"

	"go-shop-admin/internal/domain"
	"go-shop-admin/pkg/utils"
)

type ReviewService struct {
	reviews  domain.ReviewRepository
	products domain.ProductRepository
	users    domain.UserRepository
}

func NewReviewService(reviews domain.ReviewRepository, products domain.ProductRepository, users domain.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// AddReview persists a review by an authenticated user for an existing
// product. Rating arrives as a JSON number; anything that is not an
// integer in [1,5] is rejected, zero included. An absent rating is the
// handler's concern.
func (s *ReviewService) AddReview(userID, productID string, rating float64, comment string) (*domain.Review, error) {
	if productID == "" || strings.TrimSpace(comment) == "" {
		return nil, ErrMissingField
	}
	if rating != math.Trunc(rating) || rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	u, err := s.users.FindActiveByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	r := &domain.Review{
		ID:        utils.NewID(),
		ProductID: productID,
		UserID:    userID,
		Rating:    int(rating),
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.reviews.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}
