package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-shop-admin/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(c *domain.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepo) FindByID(id string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) ListAll() ([]domain.Category, error) {
	var cs []domain.Category
	err := r.db.Order("created_at DESC").Find(&cs).Error
	return cs, err
}

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) UpdateFields(id string, fields map[string]any) (*domain.Product, error) {
	res := r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *ProductRepo) SoftDelete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) ListOutOfStock() ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.Where("stock < 1").Find(&ps).Error
	return ps, err
}
