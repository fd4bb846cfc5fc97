package http

import (
	"net/http"
	"strconv"

	"factory-monitoring/internal/aggregators"
)

type topDefectLinesHandler struct {
	aggregationService aggregators.AggregationService
	defaultLimit       int
}

func NewTopDefectLinesHandler(aggregationService aggregators.AggregationService, defaultLimit int) AppHttpHandler {
	return &topDefectLinesHandler{aggregationService: aggregationService, defaultLimit: defaultLimit}
}

// Handle processes GET /api/stats/top-defect-lines?factoryId=&from=&to=&limit= requests.
// A missing limit falls back to the configured default; an explicit limit below 1
// is passed through so the aggregation engine rejects it.
func (h *topDefectLinesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	query := topDefectLinesQuery{
		FactoryID: q.Get("factoryId"),
		From:      q.Get("from"),
		To:        q.Get("to"),
		Limit:     q.Get("limit"),
	}
	if err := validate.Struct(&query); err != nil {
		return errRequestInvalid(validationMessage("invalid query parameters", err), err)
	}

	limit := h.defaultLimit
	if query.Limit != "" {
		parsed, err := strconv.Atoi(query.Limit)
		if err != nil {
			return errRequestInvalid("limit must be an integer", err)
		}
		limit = parsed
	}

	window, err := parseWindow(query.From, query.To)
	if err != nil {
		return err
	}

	lines, err := h.aggregationService.GetTopDefectLines(r.Context(), query.FactoryID, window, limit)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, topDefectLinesResponse{Lines: lines})
	return nil
}
