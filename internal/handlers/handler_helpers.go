package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// parseDateParam parses a YYYY-MM-DD path parameter.
func parseDateParam(raw string) (domain.CalendarDate, error) {
	return domain.ParseCalendarDate(raw)
}

// dateQuery parses a required YYYY-MM-DD query parameter. On failure it
// writes the 400 response and returns ok=false.
func dateQuery(c *gin.Context, name string) (domain.CalendarDate, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: " + name})
		return domain.CalendarDate{}, false
	}
	date, err := domain.ParseCalendarDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date for " + name + ": " + raw})
		return domain.CalendarDate{}, false
	}
	return date, true
}

// rangeQuery parses the from/to query parameters.
func rangeQuery(c *gin.Context) (from, to domain.CalendarDate, ok bool) {
	from, ok = dateQuery(c, "from")
	if !ok {
		return
	}
	to, ok = dateQuery(c, "to")
	return
}

// propagateFrom re-runs balance propagation after a committed ledger change.
// The change itself already succeeded, so a propagation failure is logged and
// the request still completes; the next mutation or an explicit recalculation
// repairs the rows.
func propagateFrom(c *gin.Context, balanceSvc portssvc.BalanceSvcFacade, from domain.CalendarDate) {
	if from.IsZero() {
		return
	}
	if err := balanceSvc.PropagateBalancesForward(c.Request.Context(), from); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Balance propagation failed after ledger change",
			slog.String("error", err.Error()), slog.String("from", from.String()))
	}
}
