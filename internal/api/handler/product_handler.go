package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellerhub/sellerhub-api/internal/api/metrics"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

// ProductHandler handles the per-seller catalog endpoints. Every operation
// is scoped to the authenticated principal's userId.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products — the caller's whole catalog, newest first.
//
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  map[string]any
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /products/search — filtered, sorted, paginated catalog.
//
// @Summary      Search own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Name/description substring"
// @Param        category     query     string  false  "Category filter"
// @Param        minPrice     query     number  false  "Minimum price"
// @Param        maxPrice     query     number  false  "Maximum price"
// @Param        stockFilter  query     string  false  "inStock | outOfStock | all"
// @Param        sortBy       query     string  false  "name | price | stock | createdAt"
// @Param        sortOrder    query     string  false  "asc | desc"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        limit        query     int     false  "Page size"
// @Success      200  {object}  productPageResponse
// @Failure      401  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req searchProductsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	page, err := h.service.Search(c.Request().Context(), principal.UserID, ports.ProductQuery{
		Search:      req.Search,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		StockFilter: req.StockFilter,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Page:        req.Page,
		Limit:       req.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productPageResponse{
		Data: page.Items,
		Meta: paginationMeta{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// Get handles GET /products/:id.
//
// @Summary      Get one product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), c.Param("id"), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		UserID:      principal.UserID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id with a partial payload.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), principal.UserID, ports.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), principal.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
