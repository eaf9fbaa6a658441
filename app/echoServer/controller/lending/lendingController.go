package lending

import (
	"log/slog"
	"net/http"
	"time"

	"lendingdesk/app/echoServer/metrics"
	"lendingdesk/model"
	ls "lendingdesk/service/lending"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

// asOf resolves the caller-supplied business date; the engine never samples
// the clock itself.
func asOf(s string) (time.Time, bool) {
	if s == "" {
		return model.DateOnly(time.Now()), true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// POST /v1/loans
func (h *Controller) Issue(c echo.Context) error {
	var req IssueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	today, ok := asOf(req.AsOf)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "as_of must be YYYY-MM-DD"})
	}

	out, err := h.Svc.Issue(c.Request().Context(), req.MemberID, req.ItemID, today)
	if err != nil {
		switch ls.Code(err) {
		case ls.ErrBorrowerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
		case ls.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		case ls.ErrBorrowLimit:
			return c.JSON(http.StatusConflict, echo.Map{"message": "borrow limit reached"})
		case ls.ErrItemUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no copy available"})
		case ls.ErrItemAlreadyOnLoan:
			return c.JSON(http.StatusConflict, echo.Map{"message": "member already holds this item"})
		default:
			h.Log.Error("loan issue", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	metrics.CountIssued()
	return c.JSON(http.StatusCreated, echo.Map{
		"loan_id":  out.LoanID,
		"due_date": out.DueDate.Format("2006-01-02"),
	})
}

// POST /v1/loans/return
func (h *Controller) Return(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	today, ok := asOf(req.AsOf)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "as_of must be YYYY-MM-DD"})
	}

	out, err := h.Svc.Return(c.Request().Context(), req.MemberID, req.ItemID, today)
	if err != nil {
		switch ls.Code(err) {
		case ls.ErrBorrowerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
		case ls.ErrNoActiveLoan:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no active loan for this item"})
		case ls.ErrAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "loan already returned"})
		default:
			h.Log.Error("loan return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	metrics.CountReturned(out.Fine)
	return c.JSON(http.StatusOK, echo.Map{
		"loan_id":      out.LoanID,
		"days_overdue": out.DaysOverdue,
		"fine":         out.Fine,
	})
}

// GET /v1/members/:id/loans
func (h *Controller) History(c echo.Context) error {
	id := c.Param("id")
	rows, err := h.Svc.History(c.Request().Context(), id)
	if err != nil {
		if ls.Code(err) == ls.ErrBorrowerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "member not found"})
		}
		h.Log.Error("loan history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/loans/outstanding
func (h *Controller) Outstanding(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Outstanding(c.Request().Context())})
}
