package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ggabbo/gabohealth/pkg/pagination"
	"github.com/ggabbo/gabohealth/pkg/validation"
)

// FailureMessage is the generic message shown when the record store write
// does not complete. The form stays open on the client; no retry happens
// here.
const FailureMessage = "Não foi possível concluir a operação. Tente novamente."

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Create)
	api.GET("/appointments", h.List)
	api.GET("/appointments/summary", h.Summary)
	api.GET("/appointments/:id", h.Get)
	api.PATCH("/appointments/:id", h.Update)
}

type createRequest struct {
	UserID           uuid.UUID `json:"userId"`
	PatientID        uuid.UUID `json:"patientId"`
	PrimaryPhysician string    `json:"primaryPhysician"`
	Schedule         time.Time `json:"schedule"`
	Reason           string    `json:"reason"`
	Note             *string   `json:"note"`
}

type updateRequest struct {
	Type               string    `json:"type"`
	PrimaryPhysician   string    `json:"primaryPhysician"`
	Schedule           time.Time `json:"schedule"`
	Reason             string    `json:"reason"`
	Note               *string   `json:"note"`
	CancellationReason *string   `json:"cancellationReason"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a := Appointment{
		UserID:           req.UserID,
		PatientID:        req.PatientID,
		PrimaryPhysician: req.PrimaryPhysician,
		Schedule:         req.Schedule,
		Reason:           req.Reason,
		Note:             req.Note,
	}
	err := h.svc.Create(c.Request().Context(), &a)
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verr.Fields,
		})
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, FailureMessage).SetInternal(err)
	}

	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Update(c.Request().Context(), UpdateRequest{
		ID:                 id,
		Action:             ParseAction(req.Type),
		PrimaryPhysician:   req.PrimaryPhysician,
		Schedule:           req.Schedule,
		Reason:             req.Reason,
		Note:               req.Note,
		CancellationReason: req.CancellationReason,
	})
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verr.Fields,
		})
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, FailureMessage).SetInternal(err)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) List(c echo.Context) error {
	if raw := c.QueryParam("patientId"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
		}
		items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, FailureMessage).SetInternal(err)
		}
		return c.JSON(http.StatusOK, items)
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, FailureMessage).SetInternal(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Summary(c echo.Context) error {
	s, err := h.svc.Summarize(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, FailureMessage).SetInternal(err)
	}
	return c.JSON(http.StatusOK, s)
}
