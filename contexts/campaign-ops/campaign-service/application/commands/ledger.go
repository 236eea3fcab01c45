package commands

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
	"adtrack/internal/shared/isoweek"
)

// upsertWeeklySnapshot writes the campaign's current metrics into the
// ledger under the previous ISO week. Find-then-merge, insert when no
// row exists. Two concurrent upserts for the same (campaign, week) can
// race into two rows; accepted, the reader merges on display order.
func upsertWeeklySnapshot(
	ctx context.Context,
	history ports.HistoryRepository,
	idGen ports.IDGenerator,
	clock ports.Clock,
	logger *slog.Logger,
	campaign entities.Campaign,
	recordedBy string,
) error {
	now := clock.Now().UTC()
	week := isoweek.Previous(now)
	incoming := entities.SnapshotFromCampaign(campaign, week, now, recordedBy)

	existing, found, err := history.FindWeeklyRecord(ctx, campaign.CampaignID, week)
	if err != nil {
		return err
	}
	if found {
		existing.MergeFrom(incoming)
		if err := history.UpdateWeeklyRecord(ctx, existing); err != nil {
			return err
		}
	} else {
		recordID, err := idGen.NewID(ctx)
		if err != nil {
			return err
		}
		incoming.RecordID = recordID
		incoming.CreatedAt = now
		if err := history.CreateWeeklyRecord(ctx, incoming); err != nil {
			return err
		}
	}

	logger.Info("weekly snapshot upserted",
		"event", "weekly_snapshot_upserted",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"iso_week", week,
		"merged", found,
	)
	return nil
}
