package handlers

import (
	"net/http"

	response "insurance_backoffice/internal/adapter/http/dto/response"
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only dashboard projections.
type DashboardHandler struct {
	usecase     usecase.IDashboardUseCase
	recentLimit int
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, recentLimit int) *DashboardHandler {
	if recentLimit <= 0 {
		recentLimit = usecase.DefaultRecentLimit
	}
	return &DashboardHandler{usecase: uc, recentLimit: recentLimit}
}

// Summary godoc
// @Summary      Counts and most recent records of every kind
// @Tags         dashboard
// @Produce      json
// @Param        limit  query     int  false  "Recent items per kind"
// @Success      200    {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	n, ok := queryInt(c, "limit", h.recentLimit)
	if !ok {
		return
	}
	summary, err := h.usecase.Summary(c.Request.Context(), n)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}

// Counts godoc
// @Summary      Number of records of every kind
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.CountsResponse
// @Router       /dashboard/counts [get]
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.usecase.Counts(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCounts(counts))
}

// Recent godoc
// @Summary      Most recently created records of one kind, newest first
// @Tags         dashboard
// @Produce      json
// @Param        kind  path      string  true   "customers, policies or claims"
// @Param        n     query     int     false  "Number of items"
// @Success      200   {object}  response.RecentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /dashboard/recent/{kind} [get]
func (h *DashboardHandler) Recent(c *gin.Context) {
	kind, ok := entities.ParseKind(c.Param("kind"))
	if !ok {
		abortWith(c, errUnknownKind)
		return
	}
	n, ok := queryInt(c, "n", h.recentLimit)
	if !ok {
		return
	}
	items, err := h.usecase.Recent(c.Request.Context(), kind, n)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecent(items))
}
