package service

import (
	"context"
	"html/template"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-shop-admin/internal/core/cache"
	"go-shop-admin/internal/domain"
	"go-shop-admin/internal/mail"
	"go-shop-admin/pkg/utils"
)

const (
	cacheKeyCategories = "catalog:categories"
	cacheKeyProducts   = "catalog:products"
)

type CatalogService struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	reviews    domain.ReviewRepository
	cache      *cache.Cache // nil disables caching
	cacheTTL   time.Duration
	mailq      MailQueue
	log        *zap.Logger
}

func NewCatalogService(
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	reviews domain.ReviewRepository,
	c *cache.Cache,
	cacheTTL time.Duration,
	mailq MailQueue,
	log *zap.Logger,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		reviews:    reviews,
		cache:      c,
		cacheTTL:   cacheTTL,
		mailq:      mailq,
		log:        log,
	}
}

func (s *CatalogService) AddCategory(name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingField
	}
	c := &domain.Category{ID: utils.NewID(), Name: strings.TrimSpace(name)}
	if err := s.categories.Create(c); err != nil {
		return nil, err
	}
	s.invalidate(context.Background())
	return c, nil
}

// ListCategories returns every category with its products inlined,
// served through the read cache.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.CategoryDetail, error) {
	if s.cache == nil {
		return s.loadCategories(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, cacheKeyCategories, s.cacheTTL, s.loadCategories)
}

func (s *CatalogService) loadCategories(context.Context) ([]domain.CategoryDetail, error) {
	cats, err := s.categories.ListAll()
	if err != nil {
		return nil, err
	}
	prods, err := s.products.ListAll()
	if err != nil {
		return nil, err
	}

	byCat := map[string][]domain.Product{}
	for _, p := range prods {
		byCat[p.CategoryID] = append(byCat[p.CategoryID], p)
	}

	out := make([]domain.CategoryDetail, 0, len(cats))
	for _, c := range cats {
		ps := byCat[c.ID]
		if ps == nil {
			ps = []domain.Product{}
		}
		out = append(out, domain.CategoryDetail{
			ID:            c.ID,
			Name:          c.Name,
			Products:      ps,
			TotalProducts: len(ps),
		})
	}
	return out, nil
}

type AddProductInput struct {
	Name       string
	Price      float64
	CategoryID string
	Stock      int
}

func (s *CatalogService) AddProduct(in AddProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.CategoryID == "" {
		return nil, ErrMissingField
	}
	c, err := s.categories.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	p := &domain.Product{
		ID:         utils.NewID(),
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	s.invalidate(context.Background())
	return p, nil
}

type UpdateProductInput struct {
	Name       *string
	Price      *float64
	Stock      *int
	CategoryID *string
}

func (s *CatalogService) UpdateProduct(id string, in UpdateProductInput) (*domain.Product, error) {
	patch := map[string]any{}
	if in.Name != nil {
		patch["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		patch["price"] = *in.Price
	}
	if in.Stock != nil {
		patch["stock"] = *in.Stock
	}
	if in.CategoryID != nil {
		patch["category_id"] = *in.CategoryID
	}
	if len(patch) == 0 {
		return nil, ErrNoChanges
	}

	p, err := s.products.UpdateFields(id, patch)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	s.invalidate(context.Background())
	return p, nil
}

// DeleteProduct soft-deletes; the row stays but leaves every listing.
func (s *CatalogService) DeleteProduct(id string) error {
	found, err := s.products.SoftDelete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	s.invalidate(context.Background())
	return nil
}

// ListProducts is the public product view: category name plus review
// statistics, served through the read cache.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.ProductDetail, error) {
	if s.cache == nil {
		return s.loadProducts(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, cacheKeyProducts, s.cacheTTL, s.loadProducts)
}

func (s *CatalogService) loadProducts(context.Context) ([]domain.ProductDetail, error) {
	prods, err := s.products.ListAll()
	if err != nil {
		return nil, err
	}
	cats, err := s.categories.ListAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.reviews.CountByProductRating()
	if err != nil {
		return nil, err
	}
	return buildProductDetails(prods, cats, counts), nil
}

// buildProductDetails merges products, category names and the grouped
// review histogram into the listing shape.
func buildProductDetails(prods []domain.Product, cats []domain.Category, counts []domain.RatingCount) []domain.ProductDetail {
	catName := map[string]string{}
	for _, c := range cats {
		catName[c.ID] = c.Name
	}

	type agg struct {
		stars [6]int // index by rating 1..5
		total int
		sum   int
	}
	byProduct := map[string]*agg{}
	for _, rc := range counts {
		if rc.Rating < 1 || rc.Rating > 5 {
			continue
		}
		a := byProduct[rc.ProductID]
		if a == nil {
			a = &agg{}
			byProduct[rc.ProductID] = a
		}
		a.stars[rc.Rating] += rc.Count
		a.total += rc.Count
		a.sum += rc.Rating * rc.Count
	}

	out := make([]domain.ProductDetail, 0, len(prods))
	for _, p := range prods {
		d := domain.ProductDetail{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: catName[p.CategoryID],
		}
		if a := byProduct[p.ID]; a != nil && a.total > 0 {
			d.AverageRating = float64(a.sum) / float64(a.total)
			d.TotalReviews = a.total
			d.OneStar = a.stars[1]
			d.TwoStar = a.stars[2]
			d.ThreeStar = a.stars[3]
			d.FourStar = a.stars[4]
			d.FiveStar = a.stars[5]
		}
		out = append(out, d)
	}
	return out
}

func (s *CatalogService) ListOutOfStock() ([]domain.Product, error) {
	return s.products.ListOutOfStock()
}

var productReportTmpl = template.Must(template.New("report").Parse(`<h2>Product Report</h2>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Name</th><th>Price</th><th>Stock</th><th>Category</th></tr>
{{range .}}<tr><td>{{.Name}}</td><td>{{.Price}}</td><td>{{.Stock}}</td><td>{{.Category}}</td></tr>
{{end}}</table>`))

// ProductReportHTML renders all non-deleted products as an HTML table.
func (s *CatalogService) ProductReportHTML(ctx context.Context) (string, error) {
	details, err := s.loadProducts(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := productReportTmpl.Execute(&b, details); err != nil {
		return "", err
	}
	return b.String(), nil
}

// SendProductReport mails the report; delivery is fire-and-forget.
func (s *CatalogService) SendProductReport(ctx context.Context, to string) error {
	if strings.TrimSpace(to) == "" {
		return ErrMissingField
	}
	body, err := s.ProductReportHTML(ctx)
	if err != nil {
		return err
	}
	s.mailq.Enqueue(mail.Message{To: to, Subject: "Product Report", Body: body, HTML: true})
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cacheKeyCategories, cacheKeyProducts)
	}
}
