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

// UpdateCampaignCommand carries a partial edit. Nil pointers mean "not
// supplied"; supplying an explicit zero counts as a metric upload.
type UpdateCampaignCommand struct {
	CampaignID string
	ActingUser string

	Name               *string
	Country            *string
	Vertical           *string
	Platform           *string
	Segment            *string
	ExternalPlatformID *string
	OwnerName          *string
	ShortDescription   *string
	Objective          *string
	Benefit            *string
	Description        *string
	ReportURL          *string
	State              *string

	Reach             *int64
	Clicks            *int64
	Leads             *int64
	WeeklySpend       *float64
	DriversRegistered *int64
	DriversFirstRide  *int64
}

// HasTrafficMetricInput reports whether the edit supplies any
// trafficker metric.
func (cmd UpdateCampaignCommand) HasTrafficMetricInput() bool {
	return cmd.Reach != nil || cmd.Clicks != nil || cmd.Leads != nil || cmd.WeeklySpend != nil
}

// HasDriverMetricInput reports whether the edit supplies any driver
// metric.
func (cmd UpdateCampaignCommand) HasDriverMetricInput() bool {
	return cmd.DriversRegistered != nil || cmd.DriversFirstRide != nil
}

type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Tasks     TaskReconciler
	Audit     ports.AuditSink
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

type UpdateCampaignResult struct {
	Campaign entities.Campaign
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) (UpdateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return UpdateCampaignResult{}, err
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Name = name
	}
	if cmd.Country != nil {
		country, ok := entities.ParseCountry(*cmd.Country)
		if !ok {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Country = country
	}
	if cmd.Vertical != nil {
		vertical, ok := entities.ParseVertical(*cmd.Vertical)
		if !ok {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Vertical = vertical
	}
	if cmd.Platform != nil {
		platform, ok := entities.ParseAdPlatform(*cmd.Platform)
		if !ok {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Platform = platform
	}
	if cmd.Segment != nil {
		segment, ok := entities.ParseSegment(*cmd.Segment)
		if !ok {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		campaign.Segment = segment
	}
	if cmd.ExternalPlatformID != nil {
		campaign.ExternalPlatformID = strings.TrimSpace(*cmd.ExternalPlatformID)
	}
	if cmd.OwnerName != nil {
		owner := strings.TrimSpace(*cmd.OwnerName)
		campaign.OwnerName = owner
		campaign.OwnerInitials = entities.OwnerInitialsFromName(owner)
	}
	if cmd.ShortDescription != nil {
		campaign.ShortDescription = strings.TrimSpace(*cmd.ShortDescription)
	}
	if cmd.Objective != nil {
		campaign.Objective = strings.TrimSpace(*cmd.Objective)
	}
	if cmd.Benefit != nil {
		campaign.Benefit = strings.TrimSpace(*cmd.Benefit)
	}
	if cmd.Description != nil {
		campaign.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.ReportURL != nil {
		campaign.ReportURL = strings.TrimSpace(*cmd.ReportURL)
	}
	if cmd.State != nil {
		next, ok := entities.ParseCampaignState(*cmd.State)
		if !ok {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
		}
		if !campaign.CanTransitionTo(next) {
			return UpdateCampaignResult{}, domainerrors.ErrInvalidStateTransition
		}
		campaign.State = next
	}

	if cmd.Reach != nil {
		campaign.Reach = cmd.Reach
	}
	if cmd.Clicks != nil {
		campaign.Clicks = cmd.Clicks
	}
	if cmd.Leads != nil {
		campaign.Leads = cmd.Leads
	}
	if cmd.WeeklySpend != nil {
		campaign.WeeklySpend = cmd.WeeklySpend
	}
	if cmd.DriversRegistered != nil {
		campaign.DriversRegistered = cmd.DriversRegistered
	}
	if cmd.DriversFirstRide != nil {
		campaign.DriversFirstRide = cmd.DriversFirstRide
	}
	campaign.RecomputeCostPerLead()
	if campaign.WeeklySpend != nil {
		if campaign.DriversRegistered != nil && *campaign.DriversRegistered > 0 {
			cost := *campaign.WeeklySpend / float64(*campaign.DriversRegistered)
			campaign.CostPerDriverRegistered = &cost
		}
		if campaign.DriversFirstRide != nil && *campaign.DriversFirstRide > 0 {
			cost := *campaign.WeeklySpend / float64(*campaign.DriversFirstRide)
			campaign.CostPerDriverFirstRide = &cost
		}
	}

	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return UpdateCampaignResult{}, err
	}

	if cmd.HasTrafficMetricInput() || cmd.HasDriverMetricInput() {
		if err := upsertWeeklySnapshot(ctx, uc.History, uc.IDGen, uc.Clock, logger, campaign, cmd.ActingUser); err != nil {
			return UpdateCampaignResult{}, err
		}
	}

	if _, err := uc.Tasks.ReconcileCampaign(ctx, campaign); err != nil {
		return UpdateCampaignResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "campaign",
		Action:     "update",
		EntityID:   campaign.CampaignID,
		ActorName:  cmd.ActingUser,
		Summary:    "campaign updated: " + campaign.Name,
		OccurredAt: campaign.UpdatedAt,
	})
	logger.Info("campaign updated",
		"event", "campaign_updated",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"state", string(campaign.State),
	)
	return UpdateCampaignResult{Campaign: campaign}, nil
}
