package commands

import (
	"context"
	"fmt"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type DeleteHistoryRecordCommand struct {
	RecordID   string
	ActingUser string
}

type DeleteHistoryRecordUseCase struct {
	History ports.HistoryRepository
	Audit   ports.AuditSink
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc DeleteHistoryRecordUseCase) Execute(ctx context.Context, cmd DeleteHistoryRecordCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.RecordID == "" {
		return domainerrors.ErrHistoryRecordNotFound
	}
	if err := uc.History.DeleteWeeklyRecord(ctx, cmd.RecordID); err != nil {
		return err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "history",
		Action:     "delete",
		EntityID:   cmd.RecordID,
		ActorName:  cmd.ActingUser,
		Summary:    "weekly history record deleted",
		OccurredAt: uc.Clock.Now().UTC(),
	})
	logger.Info("weekly history record deleted",
		"event", "weekly_record_deleted",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"record_id", cmd.RecordID,
	)
	return nil
}

type SetHistoryWeekCommand struct {
	RecordID   string
	ISOWeek    int
	ActingUser string
}

type SetHistoryWeekUseCase struct {
	History ports.HistoryRepository
	Audit   ports.AuditSink
	Clock   ports.Clock
	Logger  *slog.Logger
}

type SetHistoryWeekResult struct {
	Record entities.WeeklyRecord
}

// Execute moves a ledger row to a different ISO week, correcting rows
// that were stamped against the wrong week.
func (uc SetHistoryWeekUseCase) Execute(ctx context.Context, cmd SetHistoryWeekCommand) (SetHistoryWeekResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.RecordID == "" {
		return SetHistoryWeekResult{}, domainerrors.ErrHistoryRecordNotFound
	}
	if cmd.ISOWeek < 1 || cmd.ISOWeek > 53 {
		return SetHistoryWeekResult{}, domainerrors.ErrInvalidCampaignInput
	}

	record, err := uc.History.GetWeeklyRecord(ctx, cmd.RecordID)
	if err != nil {
		return SetHistoryWeekResult{}, err
	}
	previous := record.ISOWeek
	record.ISOWeek = cmd.ISOWeek
	if err := uc.History.UpdateWeeklyRecord(ctx, record); err != nil {
		return SetHistoryWeekResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "history",
		Action:     "set_week",
		EntityID:   cmd.RecordID,
		ActorName:  cmd.ActingUser,
		Summary:    fmt.Sprintf("weekly record moved from week %d to week %d", previous, cmd.ISOWeek),
		OccurredAt: uc.Clock.Now().UTC(),
	})
	logger.Info("weekly history record reassigned",
		"event", "weekly_record_week_set",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"record_id", cmd.RecordID,
		"iso_week", cmd.ISOWeek,
	)
	return SetHistoryWeekResult{Record: record}, nil
}
