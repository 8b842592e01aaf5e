package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/api/metrics"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// AccountHandler handles registration, login and logout for both account
// kinds.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// RegisterPro creates a homeowner account.
//
// @Summary      Register a pro (homeowner) account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      proRegisterRequest  true  "Registration details"
// @Success      201   {object}  proRegisterResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /register [post]
func (h *AccountHandler) RegisterPro(c echo.Context) error {
	var req proRegisterRequest
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	user, err := h.accounts.RegisterPro(c.Request().Context(), ports.RegisterProInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, proRegisterResponse{Message: "ok", UserID: user.ID})
}

// LoginPro authenticates a homeowner and returns a session JWT.
//
// @Summary      Pro login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  proLoginResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AccountHandler) LoginPro(c echo.Context) error {
	var req loginRequest
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	token, user, err := h.accounts.LoginPro(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, proLoginResponse{
		Message: "ok",
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Token:   token,
	})
}

// RegisterArtisan creates an artisan account.
//
// @Summary      Register an artisan account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      artisanRegisterRequest  true  "Registration details"
// @Success      201   {object}  artisanRegisterResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /artisan/register [post]
func (h *AccountHandler) RegisterArtisan(c echo.Context) error {
	var req artisanRegisterRequest
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	artisan, err := h.accounts.RegisterArtisan(c.Request().Context(), ports.RegisterArtisanInput{
		ContactName: req.ContactName,
		Email:       req.Email,
		Password:    req.Password,
		Commune:     req.Commune,
		RadiusKm:    req.RadiusKm,
		Phone:       req.Phone,
		ZoneNote:    req.ZoneNote,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, artisanRegisterResponse{Message: "ok", ArtisanID: artisan.ID})
}

// LoginArtisan authenticates an artisan and returns a fresh opaque session
// token. Any previous session for the artisan is implicitly invalidated.
//
// @Summary      Artisan login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  artisanLoginResponse
// @Failure      401   {object}  map[string]string
// @Router       /artisan/login [post]
func (h *AccountHandler) LoginArtisan(c echo.Context) error {
	var req loginRequest
	if err := bindAndCheck(c, &req); err != nil {
		return err
	}

	token, artisan, err := h.accounts.LoginArtisan(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.ArtisanLoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.ArtisanLoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, artisanLoginResponse{
		Message:      "ok",
		ArtisanID:    artisan.ID,
		ArtisanToken: token,
		ContactName:  artisan.ContactName,
		Email:        artisan.Email,
		Commune:      artisan.Commune,
		RadiusKm:     artisan.RadiusKm,
		Phone:        artisan.Phone,
		ZoneNote:     artisan.ZoneNote,
	})
}

// LogoutArtisan revokes the artisan's current session token.
//
// @Summary      Artisan logout
// @Tags         auth
// @Produce      json
// @Param        artisan_id       path    string  true  "Artisan id"
// @Param        X-Artisan-Token  header  string  true  "Session token"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  map[string]string
// @Router       /artisan/logout/{artisan_id} [post]
func (h *AccountHandler) LogoutArtisan(c echo.Context) error {
	if err := h.accounts.LogoutArtisan(c.Request().Context(), c.Param("artisan_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
