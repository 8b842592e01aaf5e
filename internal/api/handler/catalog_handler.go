package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/ports"
)

// CatalogHandler serves the public trade-category listing and the
// admin-gated editing routes.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type categoryPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Position    int    `json:"position"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// List returns all trade categories, ordered by position.
//
// @Summary      List trade categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /categories [get]
func (h *CatalogHandler) List(c echo.Context) error {
	categories, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{
			ID:          cat.ID,
			Title:       cat.Title,
			Description: cat.Description,
			ImageURL:    cat.ImageURL,
			Position:    cat.Position,
			CreatedAt:   cat.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Upsert creates or updates a trade category.
//
// @Summary      Create or update a trade category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        X-Admin-Token  header  string           true  "Admin token"
// @Param        body           body    categoryPayload  true  "Category"
// @Success      200  {object}  categoryResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/categories [post]
func (h *CatalogHandler) Upsert(c echo.Context) error {
	var req categoryPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.catalog.Upsert(c.Request().Context(), ports.UpsertCategoryInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Position:    req.Position,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{
		ID:          saved.ID,
		Title:       saved.Title,
		Description: saved.Description,
		ImageURL:    saved.ImageURL,
		Position:    saved.Position,
		CreatedAt:   saved.CreatedAt,
	})
}

// Delete removes a trade category.
//
// @Summary      Delete a trade category
// @Tags         catalog
// @Produce      json
// @Param        X-Admin-Token  header  string  true  "Admin token"
// @Param        id             path    string  true  "Category id"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/categories/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
