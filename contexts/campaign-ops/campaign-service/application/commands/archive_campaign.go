package commands

import (
	"context"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type ArchiveCampaignCommand struct {
	CampaignID string
	ActingUser string
}

type ArchiveCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Audit     ports.AuditSink
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

type ArchiveCampaignResult struct {
	Campaign entities.Campaign
	// MissingMetrics flags an archive that went through with an
	// incomplete snapshot. A warning for the caller, not an error.
	MissingMetrics bool
}

func (uc ArchiveCampaignUseCase) Execute(ctx context.Context, cmd ArchiveCampaignCommand) (ArchiveCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return ArchiveCampaignResult{}, err
	}

	if negatives := campaign.NegativeMetricFields(); len(negatives) > 0 {
		logger.Warn("archive rejected on negative metrics",
			"event", "campaign_archive_rejected",
			"module", "campaign-ops/campaign-service",
			"layer", "application",
			"campaign_id", campaign.CampaignID,
			"fields", negatives,
		)
		return ArchiveCampaignResult{}, domainerrors.ErrNegativeMetricValue
	}

	if err := upsertWeeklySnapshot(ctx, uc.History, uc.IDGen, uc.Clock, logger, campaign, cmd.ActingUser); err != nil {
		return ArchiveCampaignResult{}, err
	}

	missing := !campaign.HasTrafficMetrics() || !campaign.HasDriverMetrics()
	if missing {
		logger.Warn("archiving with incomplete metrics",
			"event", "campaign_archived_incomplete",
			"module", "campaign-ops/campaign-service",
			"layer", "application",
			"campaign_id", campaign.CampaignID,
		)
	}

	campaign.State = entities.StateArchived
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return ArchiveCampaignResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "campaign",
		Action:     "archive",
		EntityID:   campaign.CampaignID,
		ActorName:  cmd.ActingUser,
		Summary:    "campaign archived: " + campaign.Name,
		OccurredAt: campaign.UpdatedAt,
	})
	logger.Info("campaign archived",
		"event", "campaign_archived",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"missing_metrics", missing,
	)
	return ArchiveCampaignResult{Campaign: campaign, MissingMetrics: missing}, nil
}
