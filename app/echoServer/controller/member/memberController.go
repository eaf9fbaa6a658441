package member

import (
	"errors"
	"log/slog"
	"net/http"

	"lendingdesk/model"
	membersvc "lendingdesk/service/member"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc membersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/members
func (h *Controller) Register(c echo.Context) error {
	var req RegisterMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	v, err := h.Svc.Register(c.Request().Context(), req.ID, req.Name, req.Email, model.Kind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, membersvc.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"message": "member id already registered"})
		case errors.Is(err, membersvc.ErrUnknownKind):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown borrower kind"})
		case errors.Is(err, membersvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("member register", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, v)
}

// GET /v1/members
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.List(c.Request().Context())})
}

// GET /v1/members/:id
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	v, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, membersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
		}
		h.Log.Error("member detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, v)
}
