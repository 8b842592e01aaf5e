package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// FeedHandler serves the artisan request feed and the per-artisan status
// writes. Both routes sit behind the artisan token guard.
type FeedHandler struct {
	feed     ports.FeedService
	statuses ports.StatusService
}

func NewFeedHandler(feed ports.FeedService, statuses ports.StatusService) *FeedHandler {
	return &FeedHandler{feed: feed, statuses: statuses}
}

type feedItemResponse struct {
	Kind     string    `json:"kind"`
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	WorkType string    `json:"work_type"`
	Surface  string    `json:"surface"`
	Budget   string    `json:"budget"`
	Email    string    `json:"email"`
	Commune  string    `json:"commune"`
	Status   string    `json:"status"`
}

type feedResponse struct {
	Items []feedItemResponse `json:"items"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// List returns the artisan's merged request feed, newest first.
//
// @Summary      List requests for an artisan
// @Tags         artisan
// @Produce      json
// @Param        artisan_id       path    string  true  "Artisan id"
// @Param        X-Artisan-Token  header  string  true  "Session token"
// @Success      200  {object}  feedResponse
// @Failure      401  {object}  errorResponse
// @Router       /artisan/requests/{artisan_id} [get]
func (h *FeedHandler) List(c echo.Context) error {
	items, err := h.feed.ListForArtisan(c.Request().Context(), c.Param("artisan_id"))
	if err != nil {
		return err
	}

	resp := feedResponse{Items: make([]feedItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, feedItemResponse{
			Kind:     string(it.Kind),
			ID:       it.ID,
			Date:     it.Date,
			WorkType: it.WorkType,
			Surface:  it.Surface,
			Budget:   it.Budget,
			Email:    it.Email,
			Commune:  it.Commune,
			Status:   string(it.Status),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// SetStatus upserts the artisan's status for one request. Only the owning
// artisan's view changes; other artisans keep seeing their own overlay.
//
// @Summary      Set an artisan's status for a request
// @Tags         artisan
// @Accept       json
// @Produce      json
// @Param        artisan_id       path    string            true  "Artisan id"
// @Param        kind             path    string            true  "Request kind (simple/lead/advanced)"
// @Param        id               path    int               true  "Request id within its kind"
// @Param        X-Artisan-Token  header  string            true  "Session token"
// @Param        body             body    setStatusRequest  true  "New status"
// @Success      200  {object}  okResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /artisan/requests/{artisan_id}/{kind}/{id}/status [post]
func (h *FeedHandler) SetStatus(c echo.Context) error {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request id must be an integer")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ref := domain.RequestRef{Kind: kind, ID: id}
	if err := h.statuses.Set(c.Request().Context(), c.Param("artisan_id"), ref, domain.Status(req.Status)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}
