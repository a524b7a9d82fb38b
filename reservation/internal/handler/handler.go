package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	mw "github.com/tpfoyer/foyer-service/pkg/middleware"
	"github.com/tpfoyer/foyer-service/pkg/validate"
	_ "github.com/tpfoyer/foyer-service/reservation/docs"
	"github.com/tpfoyer/foyer-service/reservation/internal/errs"
	"github.com/tpfoyer/foyer-service/reservation/internal/model"
)

type Handler struct {
	reservationSvc ReservationService
	metrics        *mw.HTTPMetrics
	log            *zap.Logger
}

func New(reservationSvc ReservationService, log *zap.Logger) *Handler {
	h := &Handler{
		reservationSvc: reservationSvc,
		metrics:        mw.NewHTTPMetrics("foyer_reservation"),
		log:            log.Named("handler"),
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		mw.Metrics(h.metrics),
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.GET("/reservations", h.RetrieveAllReservations)
	api.GET("/reservations/search", h.TrouverResSelonDateEtStatus)
	api.GET("/reservations/:id", h.RetrieveReservation)
	api.POST("/reservations", h.AddReservation)
	api.PUT("/reservations/:id", h.ModifyReservation)
	api.DELETE("/reservations/:id", h.RemoveReservation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// RetrieveAllReservations godoc
// @Summary  List reservations
// @Tags     reservations
// @Produce  json
// @Success  200 {array}  model.Reservation
// @Router   /reservations [get]
func (h *Handler) RetrieveAllReservations(c echo.Context) error {
	items, err := h.reservationSvc.RetrieveAllReservations(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// RetrieveReservation godoc
// @Summary  Get reservation by id
// @Tags     reservations
// @Produce  json
// @Param    id  path  string  true  "reservation id"
// @Success  200 {object} model.Reservation
// @Failure  404 {object} echo.HTTPError
// @Router   /reservations/{id} [get]
func (h *Handler) RetrieveReservation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	res, err := h.reservationSvc.RetrieveReservation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// AddReservation godoc
// @Summary  Create reservation
// @Description An empty or null body is accepted and answered with null.
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Param    request body model.ReservationRequest false "reservation"
// @Success  200 {object} model.Reservation
// @Failure  400 {object} echo.HTTPError
// @Router   /reservations [post]
func (h *Handler) AddReservation(c echo.Context) error {
	var req *model.ReservationRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var r *model.Reservation
	if req != nil {
		if err := h.validate(c, *req); err != nil {
			return err
		}
		res := req.Reservation()
		r = &res
	}

	added, err := h.reservationSvc.AddReservation(c.Request().Context(), r)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, added)
}

// ModifyReservation godoc
// @Summary  Update reservation
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Param    id      path string                   true "reservation id"
// @Param    request body model.ReservationRequest true "reservation"
// @Success  200 {object} model.Reservation
// @Failure  400 {object} echo.HTTPError
// @Router   /reservations/{id} [put]
func (h *Handler) ModifyReservation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	var req model.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.IDReservation != "" && req.IDReservation != id {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrIDMismatch.Error())
	}
	req.IDReservation = id
	if err := h.validate(c, req); err != nil {
		return err
	}

	res, err := h.reservationSvc.ModifyReservation(c.Request().Context(), req.Reservation())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// RemoveReservation godoc
// @Summary  Delete reservation
// @Tags     reservations
// @Param    id  path  string  true  "reservation id"
// @Success  204
// @Router   /reservations/{id} [delete]
func (h *Handler) RemoveReservation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	if err := h.reservationSvc.RemoveReservation(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// TrouverResSelonDateEtStatus godoc
// @Summary  Reservations before a date with a given validity
// @Tags     reservations
// @Produce  json
// @Param    date    query string true "cutoff, 2006-01-02 or RFC3339"
// @Param    valide  query bool   true "validity flag"
// @Success  200 {array}  model.Reservation
// @Failure  400 {object} echo.HTTPError
// @Router   /reservations/search [get]
func (h *Handler) TrouverResSelonDateEtStatus(c echo.Context) error {
	cutoff, err := model.ParseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date: "+err.Error())
	}
	valide, err := strconv.ParseBool(c.QueryParam("valide"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid valide: "+err.Error())
	}

	items, err := h.reservationSvc.TrouverResSelonDateEtStatus(c.Request().Context(), cutoff.Time, valide)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) validate(c echo.Context, req model.ReservationRequest) error {
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AnneeUniversitaire.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "anneeUniversitaire is required")
	}
	return nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidReservation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.log.Error("reservation service", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
