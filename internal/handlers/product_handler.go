package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	svc service.ProductService
	log *zap.Logger
}

func NewProductHandler(svc service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category"
// @Param brand query string false "Brand"
// @Param search query string false "Case-insensitive name search"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "newest | price_asc | price_desc | rating"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	q := service.ProductQuery{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	var fields []dto.FieldError
	for name, dst := range map[string]**float64{"minPrice": &q.MinPrice, "maxPrice": &q.MaxPrice} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: name, Message: "must be a number"})
			continue
		}
		*dst = &v
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid query", fields))
		return
	}

	page, err := h.svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListResponse(page))
}

// Featured godoc
// @Summary Featured products
// @Tags products
// @Produce json
// @Success 200 {object} dto.FeaturedProductsResponse
// @Router /api/products/featured [get]
func (h *ProductHandler) Featured(c *gin.Context) {
	list, err := h.svc.FeaturedProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FeaturedProductsResponse{Success: true, Count: len(list), Products: list})
}

// Get godoc
// @Summary Product details
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: p})
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body dto.ProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	p, err := h.svc.CreateProduct(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ProductResponse{Success: true, Product: p})
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param product body dto.ProductPatchRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductPatchRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	p, err := h.svc.UpdateProduct(c.Request.Context(), id, req.Patch())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: p})
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Product deleted"})
}

// AddReview godoc
// @Summary Review a product
// @Description One review per user per product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param review body dto.ReviewRequest true "Review"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Failure 409 {object} dto.ConflictErrorResponse "Already reviewed"
// @Router /api/products/{id}/reviews [post]
func (h *ProductHandler) AddReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	if err := h.svc.AddReview(c.Request.Context(), id, req.Rating, req.Comment); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: "Review added"})
}

// queryInt returns 0 for a missing or malformed value; services apply defaults for 0.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
