package queries

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
	"adtrack/internal/shared/isoweek"
)

// ListCampaignsQuery filters the campaign list. Week accepts a week
// number or the literal "previous", which resolves against the clock.
type ListCampaignsQuery struct {
	State    string
	Country  string
	Vertical string
	Platform string
	Owner    string
	Week     string
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]entities.Campaign, error) {
	filter := ports.CampaignFilter{Owner: strings.TrimSpace(query.Owner)}
	if query.State != "" {
		if state, ok := entities.ParseCampaignState(query.State); ok {
			filter.State = state
		}
	}
	if query.Country != "" {
		if country, ok := entities.ParseCountry(query.Country); ok {
			filter.Country = country
		}
	}
	if query.Vertical != "" {
		if vertical, ok := entities.ParseVertical(query.Vertical); ok {
			filter.Vertical = vertical
		}
	}
	if query.Platform != "" {
		if platform, ok := entities.ParseAdPlatform(query.Platform); ok {
			filter.Platform = platform
		}
	}
	switch week := strings.ToLower(strings.TrimSpace(query.Week)); week {
	case "":
	case "previous":
		filter.ISOWeek = isoweek.Previous(uc.Clock.Now().UTC())
	default:
		if parsed, err := strconv.Atoi(week); err == nil && parsed >= 1 && parsed <= 53 {
			filter.ISOWeek = parsed
		}
	}
	return uc.Campaigns.ListCampaigns(ctx, filter)
}
