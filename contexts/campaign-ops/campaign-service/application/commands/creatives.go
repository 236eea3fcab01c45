package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type CreateCreativeCommand struct {
	CampaignID    string
	FileName      string
	ExternalURL   string
	InlinePayload string
	Position      *int
	Active        *bool
	ActingUser    string
}

type UpdateCreativeCommand struct {
	CreativeID    string
	FileName      *string
	ExternalURL   *string
	InlinePayload *string
	Position      *int
	ActingUser    string
}

type CreativeActionCommand struct {
	CreativeID string
	ActingUser string
}

type ReorderCreativesCommand struct {
	CampaignID  string
	CreativeIDs []string
	ActingUser  string
}

type CreativeUseCase struct {
	Campaigns ports.CampaignRepository
	Creatives ports.CreativeRepository
	Tasks     TaskReconciler
	Audit     ports.AuditSink
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

type CreativeResult struct {
	Creative entities.Creative
	Campaign entities.Campaign
}

// afterMutation runs the lifecycle reconciliation and the state-implied
// task pass that every creative mutation must be followed by.
func (uc CreativeUseCase) afterMutation(ctx context.Context, logger *slog.Logger, campaign entities.Campaign) (entities.Campaign, error) {
	campaign, _, err := reconcileLifecycle(ctx, uc.Campaigns, uc.Creatives, uc.Clock, logger, campaign)
	if err != nil {
		return campaign, err
	}
	if _, err := uc.Tasks.ReconcileCampaign(ctx, campaign); err != nil {
		return campaign, err
	}
	return campaign, nil
}

func (uc CreativeUseCase) Create(ctx context.Context, cmd CreateCreativeCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}

	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}
	if active {
		count, err := uc.Creatives.CountActiveCreatives(ctx, campaign.CampaignID)
		if err != nil {
			return CreativeResult{}, err
		}
		if count >= entities.MaxActiveCreatives {
			return CreativeResult{}, domainerrors.ErrActiveCreativeLimit
		}
	}

	position := 0
	if cmd.Position != nil {
		if *cmd.Position < 0 {
			return CreativeResult{}, domainerrors.ErrInvalidCreativeInput
		}
		position = *cmd.Position
	} else {
		existing, err := uc.Creatives.ListCreativesByCampaign(ctx, campaign.CampaignID)
		if err != nil {
			return CreativeResult{}, err
		}
		position = len(existing)
	}

	now := uc.Clock.Now().UTC()
	creativeID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return CreativeResult{}, err
	}
	creative := entities.Creative{
		CreativeID:    creativeID,
		CampaignID:    campaign.CampaignID,
		FileName:      strings.TrimSpace(cmd.FileName),
		ExternalURL:   strings.TrimSpace(cmd.ExternalURL),
		InlinePayload: cmd.InlinePayload,
		Active:        active,
		Position:      position,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !creative.HasContent() {
		return CreativeResult{}, domainerrors.ErrInvalidCreativeInput
	}
	if err := uc.Creatives.CreateCreative(ctx, creative); err != nil {
		return CreativeResult{}, err
	}

	if active {
		if err := uc.Tasks.NotifyCreativeUpdated(ctx, campaign); err != nil {
			return CreativeResult{}, err
		}
	}
	campaign, err = uc.afterMutation(ctx, logger, campaign)
	if err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "create",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative added to campaign " + campaign.Name,
		OccurredAt: now,
	})
	logger.Info("creative created",
		"event", "creative_created",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creative_id", creative.CreativeID,
		"active", creative.Active,
	)
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}

func (uc CreativeUseCase) Update(ctx context.Context, cmd UpdateCreativeCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	creative, err := uc.Creatives.GetCreative(ctx, cmd.CreativeID)
	if err != nil {
		return CreativeResult{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}

	if cmd.FileName != nil {
		creative.FileName = strings.TrimSpace(*cmd.FileName)
	}
	if cmd.ExternalURL != nil {
		creative.ExternalURL = strings.TrimSpace(*cmd.ExternalURL)
	}
	if cmd.InlinePayload != nil {
		creative.InlinePayload = *cmd.InlinePayload
	}
	if cmd.Position != nil {
		if *cmd.Position < 0 {
			return CreativeResult{}, domainerrors.ErrInvalidCreativeInput
		}
		creative.Position = *cmd.Position
	}
	if !creative.HasContent() {
		return CreativeResult{}, domainerrors.ErrInvalidCreativeInput
	}
	creative.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Creatives.UpdateCreative(ctx, creative); err != nil {
		return CreativeResult{}, err
	}

	if creative.Active {
		if err := uc.Tasks.NotifyCreativeUpdated(ctx, campaign); err != nil {
			return CreativeResult{}, err
		}
	}
	campaign, err = uc.afterMutation(ctx, logger, campaign)
	if err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "update",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative updated on campaign " + campaign.Name,
		OccurredAt: creative.UpdatedAt,
	})
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}

func (uc CreativeUseCase) Activate(ctx context.Context, cmd CreativeActionCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	creative, err := uc.Creatives.GetCreative(ctx, cmd.CreativeID)
	if err != nil {
		return CreativeResult{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}

	if !creative.Active {
		count, err := uc.Creatives.CountActiveCreatives(ctx, campaign.CampaignID)
		if err != nil {
			return CreativeResult{}, err
		}
		if count >= entities.MaxActiveCreatives {
			return CreativeResult{}, domainerrors.ErrActiveCreativeLimit
		}
		creative.Active = true
		creative.UpdatedAt = uc.Clock.Now().UTC()
		if err := uc.Creatives.UpdateCreative(ctx, creative); err != nil {
			return CreativeResult{}, err
		}
	}

	if err := uc.Tasks.NotifyCreativeUpdated(ctx, campaign); err != nil {
		return CreativeResult{}, err
	}
	campaign, err = uc.afterMutation(ctx, logger, campaign)
	if err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "activate",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative activated on campaign " + campaign.Name,
		OccurredAt: creative.UpdatedAt,
	})
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}

func (uc CreativeUseCase) Discard(ctx context.Context, cmd CreativeActionCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	creative, err := uc.Creatives.GetCreative(ctx, cmd.CreativeID)
	if err != nil {
		return CreativeResult{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}

	if creative.Active {
		creative.Active = false
		creative.UpdatedAt = uc.Clock.Now().UTC()
		if err := uc.Creatives.UpdateCreative(ctx, creative); err != nil {
			return CreativeResult{}, err
		}
	}
	remaining, err := uc.Creatives.CountActiveCreatives(ctx, campaign.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}
	if err := uc.Tasks.NotifyCreativeDiscarded(ctx, campaign, remaining); err != nil {
		return CreativeResult{}, err
	}
	campaign, err = uc.afterMutation(ctx, logger, campaign)
	if err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "discard",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative discarded on campaign " + campaign.Name,
		OccurredAt: creative.UpdatedAt,
	})
	logger.Info("creative discarded",
		"event", "creative_discarded",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creative_id", creative.CreativeID,
		"remaining_active", remaining,
	)
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}

func (uc CreativeUseCase) Delete(ctx context.Context, cmd CreativeActionCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	creative, err := uc.Creatives.GetCreative(ctx, cmd.CreativeID)
	if err != nil {
		return CreativeResult{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}

	wasActive := creative.Active
	if err := uc.Creatives.DeleteCreative(ctx, creative.CreativeID); err != nil {
		return CreativeResult{}, err
	}
	if wasActive {
		remaining, err := uc.Creatives.CountActiveCreatives(ctx, campaign.CampaignID)
		if err != nil {
			return CreativeResult{}, err
		}
		if err := uc.Tasks.NotifyCreativeDiscarded(ctx, campaign, remaining); err != nil {
			return CreativeResult{}, err
		}
	}
	campaign, err = uc.afterMutation(ctx, logger, campaign)
	if err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "delete",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative deleted from campaign " + campaign.Name,
		OccurredAt: uc.Clock.Now().UTC(),
	})
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}

// Reorder rewrites creative positions to match the given id order.
// Every id must belong to the campaign; creatives left out of the list
// keep their relative order after the listed ones.
func (uc CreativeUseCase) Reorder(ctx context.Context, cmd ReorderCreativesCommand) ([]entities.Creative, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.Creatives.ListCreativesByCampaign(ctx, campaign.CampaignID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Creative, len(existing))
	for _, item := range existing {
		byID[item.CreativeID] = item
	}

	now := uc.Clock.Now().UTC()
	ordered := make([]entities.Creative, 0, len(existing))
	seen := make(map[string]bool, len(cmd.CreativeIDs))
	for _, id := range cmd.CreativeIDs {
		id = strings.TrimSpace(id)
		item, ok := byID[id]
		if !ok || seen[id] {
			return nil, domainerrors.ErrInvalidCreativeInput
		}
		seen[id] = true
		ordered = append(ordered, item)
	}
	for _, item := range existing {
		if !seen[item.CreativeID] {
			ordered = append(ordered, item)
		}
	}
	for i := range ordered {
		if ordered[i].Position == i {
			continue
		}
		ordered[i].Position = i
		ordered[i].UpdatedAt = now
		if err := uc.Creatives.UpdateCreative(ctx, ordered[i]); err != nil {
			return nil, err
		}
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "reorder",
		EntityID:   campaign.CampaignID,
		ActorName:  cmd.ActingUser,
		Summary:    "creatives reordered on campaign " + campaign.Name,
		OccurredAt: now,
	})
	logger.Info("creatives reordered",
		"event", "creatives_reordered",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"count", len(ordered),
	)
	return ordered, nil
}

// Resync re-raises the push-to-platform work for an already active
// creative, used when the ad platform lost or mangled the asset.
func (uc CreativeUseCase) Resync(ctx context.Context, cmd CreativeActionCommand) (CreativeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	creative, err := uc.Creatives.GetCreative(ctx, cmd.CreativeID)
	if err != nil {
		return CreativeResult{}, err
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return CreativeResult{}, err
	}
	if !creative.Active {
		return CreativeResult{}, domainerrors.ErrInvalidCreativeInput
	}

	if err := uc.Tasks.NotifyCreativeUpdated(ctx, campaign); err != nil {
		return CreativeResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "creative",
		Action:     "resync",
		EntityID:   creative.CreativeID,
		ActorName:  cmd.ActingUser,
		Summary:    "creative resync requested on campaign " + campaign.Name,
		OccurredAt: uc.Clock.Now().UTC(),
	})
	logger.Info("creative resync requested",
		"event", "creative_resync_requested",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creative_id", creative.CreativeID,
	)
	return CreativeResult{Creative: creative, Campaign: campaign}, nil
}
