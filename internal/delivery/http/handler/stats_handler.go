package handler

import (
	"net/http"

	"clinic-api/internal/usecase"
	"clinic-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
