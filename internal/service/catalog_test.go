package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-shop-admin/internal/domain"
)

func newCatalogFixture(t *testing.T) (*CatalogService, *memCategoryRepo, *memProductRepo, *memReviewRepo, *fakeMailQueue) {
	t.Helper()
	cats := &memCategoryRepo{}
	prods := newMemProductRepo()
	reviews := &memReviewRepo{}
	mq := &fakeMailQueue{}
	svc := NewCatalogService(cats, prods, reviews, nil, 0, mq, zap.NewNop())
	return svc, cats, prods, reviews, mq
}

func TestAddCategory(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCatalogFixture(t)

	_, err := svc.AddCategory("  ")
	assert.ErrorIs(t, err, ErrMissingField)

	c, err := svc.AddCategory(" Electronics ")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", c.Name)
}

func TestAddProduct(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCatalogFixture(t)
	c, err := svc.AddCategory("Books")
	require.NoError(t, err)

	_, err = svc.AddProduct(AddProductInput{Name: "", CategoryID: c.ID})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.AddProduct(AddProductInput{Name: "Novel", CategoryID: "missing"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	p, err := svc.AddProduct(AddProductInput{Name: "Novel", Price: 9.5, CategoryID: c.ID, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, c.ID, p.CategoryID)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCatalogFixture(t)
	c, err := svc.AddCategory("Books")
	require.NoError(t, err)
	p, err := svc.AddProduct(AddProductInput{Name: "Novel", Price: 9.5, CategoryID: c.ID, Stock: 3})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(p.ID, UpdateProductInput{})
	assert.ErrorIs(t, err, ErrNoChanges)

	newPrice := 12.0
	updated, err := svc.UpdateProduct(p.ID, UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 12.0, updated.Price)
	assert.Equal(t, "Novel", updated.Name)

	_, err = svc.UpdateProduct("missing", UpdateProductInput{Price: &newPrice})
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, svc.DeleteProduct(p.ID))
	assert.ErrorIs(t, svc.DeleteProduct(p.ID), ErrProductNotFound)

	// Soft-deleted products leave the listings.
	list, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBuildProductDetails_ReviewStats(t *testing.T) {
	t.Parallel()

	prods := []domain.Product{
		{ID: "p1", Name: "Widget", Price: 5, Stock: 2, CategoryID: "c1"},
		{ID: "p2", Name: "Gadget", Price: 7, Stock: 0, CategoryID: "c1"},
	}
	cats := []domain.Category{{ID: "c1", Name: "Stuff"}}
	counts := []domain.RatingCount{
		{ProductID: "p1", Rating: 5, Count: 2},
		{ProductID: "p1", Rating: 4, Count: 1},
		{ProductID: "p1", Rating: 1, Count: 1},
	}

	out := buildProductDetails(prods, cats, counts)
	require.Len(t, out, 2)

	p1 := out[0]
	assert.Equal(t, "Stuff", p1.Category)
	assert.Equal(t, 4, p1.TotalReviews)
	assert.InDelta(t, (5*2+4+1)/4.0, p1.AverageRating, 1e-9)
	assert.Equal(t, 1, p1.OneStar)
	assert.Equal(t, 0, p1.TwoStar)
	assert.Equal(t, 0, p1.ThreeStar)
	assert.Equal(t, 1, p1.FourStar)
	assert.Equal(t, 2, p1.FiveStar)

	// No reviews: zeroed stats, not NaN.
	p2 := out[1]
	assert.Equal(t, 0.0, p2.AverageRating)
	assert.Equal(t, 0, p2.TotalReviews)
}

func TestListCategories_InlinesProducts(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCatalogFixture(t)
	c1, err := svc.AddCategory("Books")
	require.NoError(t, err)
	c2, err := svc.AddCategory("Empty")
	require.NoError(t, err)
	_, err = svc.AddProduct(AddProductInput{Name: "Novel", CategoryID: c1.ID, Stock: 1})
	require.NoError(t, err)

	out, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := map[string]domain.CategoryDetail{}
	for _, d := range out {
		byID[d.ID] = d
	}
	assert.Equal(t, 1, byID[c1.ID].TotalProducts)
	assert.Equal(t, 0, byID[c2.ID].TotalProducts)
	assert.NotNil(t, byID[c2.ID].Products)
}

func TestListOutOfStock(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCatalogFixture(t)
	c, err := svc.AddCategory("Books")
	require.NoError(t, err)
	_, err = svc.AddProduct(AddProductInput{Name: "InStock", CategoryID: c.ID, Stock: 3})
	require.NoError(t, err)
	gone, err := svc.AddProduct(AddProductInput{Name: "Gone", CategoryID: c.ID, Stock: 0})
	require.NoError(t, err)

	out, err := svc.ListOutOfStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, gone.ID, out[0].ID)
}

func TestSendProductReport(t *testing.T) {
	t.Parallel()

	svc, _, _, _, mq := newCatalogFixture(t)
	c, err := svc.AddCategory("Books")
	require.NoError(t, err)
	_, err = svc.AddProduct(AddProductInput{Name: "Novel", Price: 9.5, CategoryID: c.ID, Stock: 3})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SendProductReport(context.Background(), " "), ErrMissingField)

	require.NoError(t, svc.SendProductReport(context.Background(), "boss@x.com"))
	msgs := mq.messages()
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].HTML)
	assert.Contains(t, msgs[0].Body, "<table")
	assert.Contains(t, msgs[0].Body, "Novel")
	assert.Contains(t, msgs[0].Body, "Books")
}
