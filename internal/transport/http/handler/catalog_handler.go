package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-admin/internal/service"
	mdw "go-shop-admin/internal/transport/http/middleware"
	resp "go-shop-admin/internal/transport/http/response"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

// POST /admin/category
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var in struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	cat, err := h.catalog.AddCategory(in.Name)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusCreated, resp.Created(cat, "Category created successfully."))
}

// GET /getcategory
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	out, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(out, "Categories fetched successfully."))
}

// POST /admin/product
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var in struct {
		Name       string  `json:"name" form:"name"`
		Price      float64 `json:"price" form:"price"`
		CategoryID string  `json:"categoryId" form:"categoryId"`
		Stock      int     `json:"stock" form:"stock"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	p, err := h.catalog.AddProduct(service.AddProductInput{
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		Stock:      in.Stock,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(p, "Product created successfully"))
}

// GET /getproduct
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	out, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(out, "Products fetched successfully"))
}

// PUT /admin/editproduct/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var in struct {
		Name       *string  `json:"name"`
		Price      *float64 `json:"price"`
		Stock      *int     `json:"stock"`
		CategoryID *string  `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	p, err := h.catalog.UpdateProduct(c.Param("id"), service.UpdateProductInput{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(p, "Product updated successfully"))
}

// DELETE /admin/deleteproduct/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Param("id")); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(nil, "Product deleted successfully"))
}

// GET /listproduct
func (h *CatalogHandler) ListOutOfStock(c *gin.Context) {
	out, err := h.catalog.ListOutOfStock()
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(out, "Out of stock products fetched successfully"))
}

// POST /admin/sendmail mails the product report. Defaults to the
// calling admin's own address when no recipient is given.
func (h *CatalogHandler) SendProductReport(c *gin.Context) {
	var in struct {
		To string `json:"to" form:"to"`
	}
	_ = c.ShouldBind(&in)
	if in.To == "" {
		if u, ok := mdw.CurrentUser(c); ok {
			in.To = u.Email
		}
	}
	if err := h.catalog.SendProductReport(c.Request.Context(), in.To); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(nil, "Product report is being sent"))
}
