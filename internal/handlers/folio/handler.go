package folio

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/folio/service"
	"hms/shared/constant"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Folio
	otel    otel.Otel
}

func New(service service.Folio, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/folio-items", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.DeleteFolioItem)
	})
}

// DeleteFolioItem deletes a folio item by its ID.
// @Summary Delete a folio item by ID
// @Description Delete a charge or payment line from a booking folio.
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Folio Item ID"
// @Success 200 {object} response.Message "Folio item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/folio-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFolioItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFolioItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete folio item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Folio item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Folio item deleted successfully")
}
