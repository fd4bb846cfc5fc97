package aggregators

import (
	"context"
	"sort"
	"strings"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/loggers"
	"factory-monitoring/internal/stores"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// GetStats summarizes one machine over [start, end).
	GetStats(ctx context.Context, subjectID string, window models.TimeWindow) (*models.Stats, error)
	// GetTopDefectLines ranks the lines of a factory by total defects,
	// highest first, and keeps at most limit of them.
	GetTopDefectLines(ctx context.Context, factoryID string, window models.TimeWindow, limit int) ([]*models.LineStats, error)
}

type AggregationOptions struct {
	HealthyThreshold float64
}

type aggregationService struct {
	eventReader      stores.EventReader
	healthyThreshold float64
}

func NewAggregationService(eventReader stores.EventReader, opts AggregationOptions) AggregationService {
	threshold := opts.HealthyThreshold
	if threshold <= 0 {
		threshold = DefaultHealthyThreshold
	}
	return &aggregationService{eventReader: eventReader, healthyThreshold: threshold}
}

func (s *aggregationService) GetStats(ctx context.Context, subjectID string, window models.TimeWindow) (stats *models.Stats, err error) {
	defer func() { recordQuery(kindStats, err) }()

	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, errValidationFailed("machineId is required")
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldMachineID, subjectID).Msgf("getting stats for %s", window)

	eventsCount, err := s.eventReader.CountInRange(ctx, subjectID, window)
	if err != nil {
		return nil, errInternalEventStoreFailed(err)
	}
	defectsCount, err := s.eventReader.SumDefectsInRange(ctx, subjectID, window)
	if err != nil {
		return nil, errInternalEventStoreFailed(err)
	}

	rate := defectRate(defectsCount, window)
	return &models.Stats{
		SubjectID:     subjectID,
		Start:         window.Start,
		End:           window.End,
		EventsCount:   eventsCount,
		DefectsCount:  defectsCount,
		AvgDefectRate: rate,
		Status:        healthStatus(rate, s.healthyThreshold),
	}, nil
}

func (s *aggregationService) GetTopDefectLines(ctx context.Context, factoryID string, window models.TimeWindow, limit int) (lines []*models.LineStats, err error) {
	defer func() { recordQuery(kindTopDefectLines, err) }()

	factoryID = strings.TrimSpace(factoryID)
	if factoryID == "" {
		return nil, errValidationFailed("factoryId is required")
	}
	if limit < 1 {
		return nil, errValidationFailed("limit must be at least 1")
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldFactoryID, factoryID).Msgf("getting top %d defect lines for %s", limit, window)

	rows, err := s.eventReader.GroupDefectsByLine(ctx, factoryID, window)
	if err != nil {
		return nil, errInternalEventStoreFailed(err)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalDefects != rows[j].TotalDefects {
			return rows[i].TotalDefects > rows[j].TotalDefects
		}
		return rows[i].LineID < rows[j].LineID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	lines = make([]*models.LineStats, len(rows))
	for i, row := range rows {
		lines[i] = &models.LineStats{
			LineID:         row.LineID,
			TotalDefects:   row.TotalDefects,
			EventCount:     row.EventCount,
			DefectsPercent: defectsPercent(row.TotalDefects, row.EventCount),
		}
	}
	return lines, nil
}
