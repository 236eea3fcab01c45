package commands

import (
	"context"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type ReactivateCampaignCommand struct {
	CampaignID string
	ActingUser string
}

type ReactivateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Tasks     TaskReconciler
	Audit     ports.AuditSink
	Clock     ports.Clock
	Logger    *slog.Logger
}

type ReactivateCampaignResult struct {
	Campaign entities.Campaign
}

func (uc ReactivateCampaignUseCase) Execute(ctx context.Context, cmd ReactivateCampaignCommand) (ReactivateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return ReactivateCampaignResult{}, err
	}
	if campaign.State != entities.StateArchived {
		return ReactivateCampaignResult{}, domainerrors.ErrInvalidStateTransition
	}

	campaign.State = entities.StateActive
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return ReactivateCampaignResult{}, err
	}

	// The next generation pass re-derives metric-upload tasks from
	// the reactivated state; run it eagerly here.
	if _, err := uc.Tasks.ReconcileCampaign(ctx, campaign); err != nil {
		return ReactivateCampaignResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "campaign",
		Action:     "reactivate",
		EntityID:   campaign.CampaignID,
		ActorName:  cmd.ActingUser,
		Summary:    "campaign reactivated: " + campaign.Name,
		OccurredAt: campaign.UpdatedAt,
	})
	logger.Info("campaign reactivated",
		"event", "campaign_reactivated",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
	)
	return ReactivateCampaignResult{Campaign: campaign}, nil
}
