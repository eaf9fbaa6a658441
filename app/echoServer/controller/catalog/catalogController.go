package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	catalogsvc "lendingdesk/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/catalog/items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	v, err := h.Svc.Add(c.Request().Context(), req.ID, req.Title, req.Author, req.Code, req.Copies)
	if err != nil {
		switch {
		case errors.Is(err, catalogsvc.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"message": "item id already in catalog"})
		case errors.Is(err, catalogsvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("item create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, v)
}

// GET /v1/catalog/items
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.List(c.Request().Context())})
}

// GET /v1/catalog/items/:id
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	v, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		}
		h.Log.Error("item detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, v)
}
