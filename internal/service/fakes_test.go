package service

import (
	"strings"
	"sync"
	"time"

	"go-shop-admin/internal/domain"
	"go-shop-admin/internal/mail"
)

// In-memory repositories backing the service tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) FindActiveByID(id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindActiveByEmail(email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email && !u.DeletedAt.Valid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UpdateFields(id string, fields map[string]any) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "otp":
			if v == nil {
				u.OTP = nil
			} else {
				n := v.(int)
				u.OTP = &n
			}
		case "email":
			u.Email = v.(string)
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "profile_image":
			u.ProfileImage = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

type memCategoryRepo struct {
	mu   sync.Mutex
	cats []domain.Category
}

func (m *memCategoryRepo) Create(c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cats = append(m.cats, *c)
	return nil
}

func (m *memCategoryRepo) FindByID(id string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cats {
		if m.cats[i].ID == id {
			cp := m.cats[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) ListAll() ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Category(nil), m.cats...), nil
}

type memProductRepo struct {
	mu    sync.Mutex
	prods map[string]*domain.Product
	gone  map[string]bool
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{prods: map[string]*domain.Product{}, gone: map[string]bool{}}
}

func (m *memProductRepo) Create(p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.prods[p.ID] = &cp
	return nil
}

func (m *memProductRepo) FindByID(id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prods[id]
	if !ok || m.gone[id] {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) UpdateFields(id string, fields map[string]any) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prods[id]
	if !ok || m.gone[id] {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "price":
			p.Price = v.(float64)
		case "stock":
			p.Stock = v.(int)
		case "category_id":
			p.CategoryID = v.(string)
		}
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) SoftDelete(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.prods[id]; !ok || m.gone[id] {
		return false, nil
	}
	m.gone[id] = true
	return true, nil
}

func (m *memProductRepo) ListAll() ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for id, p := range m.prods {
		if !m.gone[id] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListOutOfStock() ([]domain.Product, error) {
	all, _ := m.ListAll()
	var out []domain.Product
	for _, p := range all {
		if p.Stock < 1 {
			out = append(out, p)
		}
	}
	return out, nil
}

type memReviewRepo struct {
	mu      sync.Mutex
	reviews []domain.Review
}

func (m *memReviewRepo) Create(r *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memReviewRepo) CountByProductRating() ([]domain.RatingCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[[2]string]int{}
	for _, r := range m.reviews {
		counts[[2]string{r.ProductID, strings.Repeat("*", r.Rating)}]++
	}
	var out []domain.RatingCount
	for k, n := range counts {
		out = append(out, domain.RatingCount{ProductID: k[0], Rating: len(k[1]), Count: n})
	}
	return out, nil
}

// fakeMailQueue records enqueued messages synchronously.
type fakeMailQueue struct {
	mu   sync.Mutex
	msgs []mail.Message
}

func (f *fakeMailQueue) Enqueue(msg mail.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

func (f *fakeMailQueue) messages() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mail.Message(nil), f.msgs...)
}
