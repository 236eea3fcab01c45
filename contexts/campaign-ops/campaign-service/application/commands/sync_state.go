package commands

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

// reconcileLifecycle keeps campaign state consistent with the active
// creative count. Re-running it on an already consistent campaign is a
// no-op. Returns the possibly updated campaign and whether it changed.
func reconcileLifecycle(
	ctx context.Context,
	campaigns ports.CampaignRepository,
	creatives ports.CreativeRepository,
	clock ports.Clock,
	logger *slog.Logger,
	campaign entities.Campaign,
) (entities.Campaign, bool, error) {
	activeCount, err := creatives.CountActiveCreatives(ctx, campaign.CampaignID)
	if err != nil {
		return campaign, false, err
	}

	next := campaign.State
	switch {
	case activeCount > 0 && campaign.State == entities.StatePending:
		next = entities.StateCreativeSent
	case activeCount == 0 && (campaign.State == entities.StateCreativeSent || campaign.State == entities.StateActive):
		next = entities.StatePending
	}
	if next == campaign.State {
		return campaign, false, nil
	}

	previous := campaign.State
	campaign.State = next
	campaign.UpdatedAt = clock.Now().UTC()
	if err := campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return campaign, false, err
	}
	logger.Info("campaign state reconciled",
		"event", "campaign_state_reconciled",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"from_state", string(previous),
		"to_state", string(next),
		"active_creatives", activeCount,
	)
	return campaign, true, nil
}
