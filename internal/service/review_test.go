package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shop-admin/internal/domain"
)

func newReviewFixture(t *testing.T) (*ReviewService, *memProductRepo, *memUserRepo) {
	t.Helper()
	products := newMemProductRepo()
	users := newMemUserRepo()
	svc := NewReviewService(&memReviewRepo{}, products, users)
	return svc, products, users
}

func TestAddReview_RatingBounds(t *testing.T) {
	t.Parallel()

	svc, products, users := newReviewFixture(t)
	require.NoError(t, products.Create(&domain.Product{ID: "p1", Name: "Widget"}))
	require.NoError(t, users.Create(&domain.User{ID: "u1", Email: "a@x.com"}))

	for _, bad := range []float64{-1, 0, 0.5, 3.5, 6, 100} {
		_, err := svc.AddReview("u1", "p1", bad, "meh")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %v must be rejected", bad)
	}
	for _, ok := range []float64{1, 2, 3, 4, 5} {
		r, err := svc.AddReview("u1", "p1", ok, "fine")
		require.NoError(t, err, "rating %v must be accepted", ok)
		assert.Equal(t, int(ok), r.Rating)
	}
}

func TestAddReview_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReviewFixture(t)

	_, err := svc.AddReview("u1", "", 3, "c")
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = svc.AddReview("u1", "p1", 3, "  ")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestAddReview_Existence(t *testing.T) {
	t.Parallel()

	svc, products, users := newReviewFixture(t)
	require.NoError(t, products.Create(&domain.Product{ID: "p1", Name: "Widget"}))
	require.NoError(t, users.Create(&domain.User{ID: "u1", Email: "a@x.com"}))

	_, err := svc.AddReview("u1", "missing", 3, "c")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddReview("ghost", "p1", 3, "c")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
