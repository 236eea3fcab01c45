package queries

import (
	"context"
	"log/slog"
	"sort"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type ListHistoryUseCase struct {
	History ports.HistoryRepository
	Logger  *slog.Logger
}

// Execute returns a campaign's ledger rows, most recent week first.
func (uc ListHistoryUseCase) Execute(ctx context.Context, campaignID string) ([]entities.WeeklyRecord, error) {
	records, err := uc.History.ListWeeklyRecords(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ISOWeek > records[j].ISOWeek
	})
	return records, nil
}

// ByWeek returns every campaign's ledger row for one ISO week.
func (uc ListHistoryUseCase) ByWeek(ctx context.Context, isoWeek int) ([]entities.WeeklyRecord, error) {
	return uc.History.ListWeeklyRecordsByWeek(ctx, isoWeek)
}
