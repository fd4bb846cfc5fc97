package http

import (
	"net/http"

	"factory-monitoring/internal/aggregators"
	"factory-monitoring/internal/models"
)

type statsHandler struct {
	aggregationService aggregators.AggregationService
}

func NewStatsHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &statsHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/stats?machineId=&start=&end= requests.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	query := statsQuery{
		MachineID: q.Get("machineId"),
		Start:     q.Get("start"),
		End:       q.Get("end"),
	}
	if err := validate.Struct(&query); err != nil {
		return errRequestInvalid(validationMessage("missing query parameters", err), err)
	}

	window, err := parseWindow(query.Start, query.End)
	if err != nil {
		return err
	}

	stats, err := h.aggregationService.GetStats(r.Context(), query.MachineID, window)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, stats)
	return nil
}

func parseWindow(startValue, endValue string) (models.TimeWindow, error) {
	start, err := parseTime(startValue)
	if err != nil {
		return models.TimeWindow{}, errRequestInvalid(err.Error(), err)
	}
	end, err := parseTime(endValue)
	if err != nil {
		return models.TimeWindow{}, errRequestInvalid(err.Error(), err)
	}
	return models.NewTimeWindow(start, end), nil
}
