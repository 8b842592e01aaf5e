package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/api/middleware"
	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// IntakeHandler handles the three submission endpoints. Submissions need
// no authentication; a valid pro session on the simple form only adds
// attribution.
type IntakeHandler struct {
	intake ports.IntakeService
}

func NewIntakeHandler(intake ports.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// SubmitSimple archives a classic estimation request.
//
// @Summary      Submit a simple work request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      simpleRequestPayload  true  "Request details"
// @Success      201   {object}  submitResponse
// @Failure      422   {object}  errorResponse
// @Router       /requests [post]
func (h *IntakeHandler) SubmitSimple(c echo.Context) error {
	var req simpleRequestPayload
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	submittedBy, _ := c.Get(middleware.ContextKeyProUserID).(string)

	id, err := h.intake.SubmitSimple(c.Request().Context(), ports.SubmitSimpleInput{
		Name:      req.Name,
		Email:     req.Email,
		Commune:   req.Commune,
		SurfaceM2: req.SurfaceM2,

		LotType: req.LotType,
		Budget:  req.Budget,
		Message: req.Message,

		CoverType:      req.CoverType,
		CoverSurfaceM2: req.CoverSurfaceM2,
		Insulation:     req.Insulation,
		Sarking:        req.Sarking,

		GouttiereML:      req.GouttiereML,
		HabillageRivesML: req.HabillageRivesML,
		HabillageMurM2:   req.HabillageMurM2,
		CouvertureZincM2: req.CouvertureZincM2,
		TourChemineeNb:   req.TourChemineeNb,

		CharpOptions: req.CharpOptions,
		SubmittedBy:  submittedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitResponse{Message: "ok", ID: id})
}

// SubmitLead archives a full-lot estimation request.
//
// @Summary      Submit a lot estimation request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      leadRequestPayload  true  "Request details"
// @Success      201   {object}  submitResponse
// @Failure      422   {object}  errorResponse
// @Router       /lead [post]
func (h *IntakeHandler) SubmitLead(c echo.Context) error {
	var req leadRequestPayload
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	zinguerie := make([]domain.ZinguerieLine, 0, len(req.Zinguerie))
	for _, z := range req.Zinguerie {
		zinguerie = append(zinguerie, domain.ZinguerieLine{
			Key:   z.Key,
			Label: z.Label,
			Unit:  z.Unit,
			Qty:   z.Qty,
		})
	}

	id, err := h.intake.SubmitLead(c.Request().Context(), ports.SubmitLeadInput{
		CouvertureType:      req.CouvertureType,
		CouvertureSurfaceM2: req.CouvertureSurfaceM2,
		CouvertureIsolation: req.CouvertureIsolation,
		CouvertureSarking:   req.CouvertureSarking,
		CouvertureEcran:     req.CouvertureEcran,

		Zinguerie: zinguerie,
		Charpente: req.Charpente,

		ContactName:    req.ContactName,
		ContactCommune: req.ContactCommune,
		ContactEmail:   req.ContactEmail,
		ContactMessage: req.ContactMessage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitResponse{Message: "ok", ID: id})
}

// SubmitAdvanced archives a detailed estimation request.
//
// @Summary      Submit a detailed estimation request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      advancedRequestPayload  true  "Request details"
// @Success      201   {object}  submitResponse
// @Failure      422   {object}  errorResponse
// @Router       /advanced [post]
func (h *IntakeHandler) SubmitAdvanced(c echo.Context) error {
	var req advancedRequestPayload
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	id, err := h.intake.SubmitAdvanced(c.Request().Context(), ports.SubmitAdvancedInput{
		ContactName:    req.ContactName,
		ContactCommune: req.ContactCommune,
		ContactEmail:   req.ContactEmail,
		Payload:        req.Payload,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitResponse{Message: "ok", ID: id})
}

// bindAndCheck binds the JSON body and runs the format validator. Format
// failures answer 422 so the client distinguishes them from routing errors.
func bindAndCheck(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(payload); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
