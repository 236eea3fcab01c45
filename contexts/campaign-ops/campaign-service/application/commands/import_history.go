package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
	"adtrack/internal/shared/isoweek"
)

// ImportHistoryCommand loads a CSV export into the weekly ledger.
// Expected header: campaign,iso_week,reach,clicks,leads,weekly_spend,
// drivers_registered,drivers_first_ride. The campaign column is
// resolved as an internal id first, then an external platform id,
// then a campaign name. A blank iso_week defaults to the previous
// ISO week at import time.
type ImportHistoryCommand struct {
	Reader     io.Reader
	ActingUser string
}

type ImportHistoryUseCase struct {
	Campaigns ports.CampaignRepository
	History   ports.HistoryRepository
	Audit     ports.AuditSink
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

type ImportHistoryResult struct {
	Created int
	Updated int
	Skipped int
}

func (uc ImportHistoryUseCase) Execute(ctx context.Context, cmd ImportHistoryCommand) (ImportHistoryResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	reader := csv.NewReader(cmd.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportHistoryResult{}, domainerrors.ErrInvalidCampaignInput
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["campaign"]; !ok {
		return ImportHistoryResult{}, domainerrors.ErrInvalidCampaignInput
	}
	if _, ok := columns["iso_week"]; !ok {
		return ImportHistoryResult{}, domainerrors.ErrInvalidCampaignInput
	}

	now := uc.Clock.Now().UTC()
	result := ImportHistoryResult{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, err
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		campaign, err := uc.resolveCampaign(ctx, field("campaign"))
		if err != nil {
			if errors.Is(err, domainerrors.ErrCampaignNotFound) {
				result.Skipped++
				continue
			}
			return result, err
		}
		// A blank week means the export did not stamp one; those rows
		// belong to the previous ISO week, like interactive uploads.
		week := isoweek.Previous(now)
		if raw := field("iso_week"); raw != "" {
			week, err = strconv.Atoi(raw)
			if err != nil || week < 1 || week > 53 {
				result.Skipped++
				continue
			}
		}

		incoming := entities.WeeklyRecord{
			CampaignID:        campaign.CampaignID,
			ISOWeek:           week,
			SnapshotAt:        now,
			RecordedBy:        cmd.ActingUser,
			Reach:             parseOptionalInt(field("reach")),
			Clicks:            parseOptionalInt(field("clicks")),
			Leads:             parseOptionalInt(field("leads")),
			WeeklySpend:       parseOptionalFloat(field("weekly_spend")),
			DriversRegistered: parseOptionalInt(field("drivers_registered")),
			DriversFirstRide:  parseOptionalInt(field("drivers_first_ride")),
		}
		if incoming.WeeklySpend != nil && incoming.Leads != nil && *incoming.Leads > 0 {
			cost := *incoming.WeeklySpend / float64(*incoming.Leads)
			incoming.CostPerLead = &cost
		}
		if incoming.WeeklySpend != nil && incoming.DriversRegistered != nil && *incoming.DriversRegistered > 0 {
			cost := *incoming.WeeklySpend / float64(*incoming.DriversRegistered)
			incoming.CostPerDriverRegistered = &cost
		}
		if incoming.WeeklySpend != nil && incoming.DriversFirstRide != nil && *incoming.DriversFirstRide > 0 {
			cost := *incoming.WeeklySpend / float64(*incoming.DriversFirstRide)
			incoming.CostPerDriverFirstRide = &cost
		}

		existing, found, err := uc.History.FindWeeklyRecord(ctx, campaign.CampaignID, week)
		if err != nil {
			return result, err
		}
		if found {
			existing.MergeFrom(incoming)
			if err := uc.History.UpdateWeeklyRecord(ctx, existing); err != nil {
				return result, err
			}
			result.Updated++
			continue
		}
		recordID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return result, err
		}
		incoming.RecordID = recordID
		incoming.CreatedAt = now
		if err := uc.History.CreateWeeklyRecord(ctx, incoming); err != nil {
			return result, err
		}
		result.Created++
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "history",
		Action:     "import",
		EntityID:   "bulk",
		ActorName:  cmd.ActingUser,
		Summary:    "weekly history import",
		OccurredAt: now,
	})
	logger.Info("weekly history imported",
		"event", "weekly_history_imported",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (uc ImportHistoryUseCase) resolveCampaign(ctx context.Context, key string) (entities.Campaign, error) {
	if key == "" {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, key)
	if err == nil {
		return campaign, nil
	}
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		return entities.Campaign{}, err
	}
	campaign, err = uc.Campaigns.GetCampaignByExternalID(ctx, key)
	if err == nil {
		return campaign, nil
	}
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		return entities.Campaign{}, err
	}
	return uc.Campaigns.GetCampaignByName(ctx, key)
}

func parseOptionalInt(value string) *int64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
