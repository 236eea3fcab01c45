package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
	"adtrack/internal/shared/isoweek"
)

type CreateCampaignCommand struct {
	Name               string
	Country            string
	Vertical           string
	Platform           string
	Segment            string
	ExternalPlatformID string
	OwnerName          string
	ShortDescription   string
	Objective          string
	Benefit            string
	Description        string
	ReportURL          string
	ActingUser         string
}

type CreateCampaignUseCase struct {
	Campaigns  ports.CampaignRepository
	Tasks      TaskReconciler
	Audit      ports.AuditSink
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

type CreateCampaignResult struct {
	Campaign entities.Campaign
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = entities.DefaultCampaignName
	}
	country, ok := entities.ParseCountry(cmd.Country)
	if !ok {
		return CreateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
	}
	vertical, ok := entities.ParseVertical(cmd.Vertical)
	if !ok {
		return CreateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
	}
	platform, ok := entities.ParseAdPlatform(cmd.Platform)
	if !ok {
		return CreateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
	}
	segment, ok := entities.ParseSegment(cmd.Segment)
	if !ok {
		return CreateCampaignResult{}, domainerrors.ErrInvalidCampaignInput
	}

	owner := strings.TrimSpace(cmd.OwnerName)
	if owner == "" {
		owner = strings.TrimSpace(cmd.ActingUser)
	}

	now := uc.Clock.Now().UTC()
	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return CreateCampaignResult{}, err
	}

	campaign := entities.Campaign{
		CampaignID:         campaignID,
		Name:               name,
		Country:            country,
		Vertical:           vertical,
		Platform:           platform,
		Segment:            segment,
		ExternalPlatformID: strings.TrimSpace(cmd.ExternalPlatformID),
		OwnerName:          owner,
		OwnerInitials:      entities.OwnerInitialsFromName(owner),
		ShortDescription:   strings.TrimSpace(cmd.ShortDescription),
		Objective:          strings.TrimSpace(cmd.Objective),
		Benefit:            strings.TrimSpace(cmd.Benefit),
		Description:        strings.TrimSpace(cmd.Description),
		ReportURL:          strings.TrimSpace(cmd.ReportURL),
		State:              entities.StatePending,
		ISOWeek:            isoweek.Previous(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return CreateCampaignResult{}, err
	}

	if _, err := uc.Tasks.ReconcileCampaign(ctx, campaign); err != nil {
		return CreateCampaignResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "campaign",
		Action:     "create",
		EntityID:   campaign.CampaignID,
		ActorName:  cmd.ActingUser,
		Summary:    "campaign created: " + campaign.Name,
		OccurredAt: now,
	})
	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"state", string(campaign.State),
		"iso_week", campaign.ISOWeek,
	)
	return CreateCampaignResult{Campaign: campaign}, nil
}
