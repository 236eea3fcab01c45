package queries

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Creatives ports.CreativeRepository
	Logger    *slog.Logger
}

type GetCampaignResult struct {
	Campaign  entities.Campaign
	Creatives []entities.Creative
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (GetCampaignResult, error) {
	campaign, err := uc.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return GetCampaignResult{}, err
	}
	creatives, err := uc.Creatives.ListCreativesByCampaign(ctx, campaignID)
	if err != nil {
		return GetCampaignResult{}, err
	}
	return GetCampaignResult{Campaign: campaign, Creatives: creatives}, nil
}
