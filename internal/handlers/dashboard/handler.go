package dashboard

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/dashboard/service"
	"hms/shared/constant"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
}

// GetDashboard returns today's KPI snapshot.
// @Summary Get today's dashboard snapshot
// @Description Aggregate KPI statistics, 7-day revenue series, per-room status overview and occupancy breakdown for the current day.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse "KPI snapshot"
// @Failure 500 {object} response.Status
// @Router /api/dashboard [get]
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	snapshot, err := handler.service.GetSnapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard snapshot")

		// Never leak query failures to the caller; the dashboard contract is a
		// single generic error.
		response.WithInternalError(writer)

		return
	}

	scope.AddEvent("Dashboard snapshot built successfully")

	response.WithPayload(writer, http.StatusOK, snapshot)
}
