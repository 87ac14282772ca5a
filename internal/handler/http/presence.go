package http

import (
	"net/http"
	"strconv"

	"github.com/pontolabs/ponto-backend-go/internal/domain/presence"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type PresenceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type presenceHandlerImpl struct {
	presenceService presence.PresenceService
}

func NewPresenceHandler(presenceService presence.PresenceService) PresenceHandler {
	return &presenceHandlerImpl{
		presenceService: presenceService,
	}
}

// Get implements PresenceHandler.
func (h *presenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := presence.PresenceFilter{}
	if v := query.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := query.Get("department"); v != "" {
		filter.Department = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		filter.Limit = limit
	}

	result, err := h.presenceService.GetPresence(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
