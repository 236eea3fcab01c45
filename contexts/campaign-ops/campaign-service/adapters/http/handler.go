package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"time"

	"adtrack/contexts/campaign-ops/campaign-service/application/commands"
	"adtrack/contexts/campaign-ops/campaign-service/application/queries"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	httptransport "adtrack/contexts/campaign-ops/campaign-service/transport/http"
)

type Handler struct {
	CreateCampaign     commands.CreateCampaignUseCase
	UpdateCampaign     commands.UpdateCampaignUseCase
	ArchiveCampaign    commands.ArchiveCampaignUseCase
	ReactivateCampaign commands.ReactivateCampaignUseCase
	Creatives          commands.CreativeUseCase
	GenerateTasks      commands.GenerateTasksUseCase
	CompleteTask       commands.CompleteTaskUseCase
	DeriveTask         commands.DeriveTaskUseCase
	ImportHistory      commands.ImportHistoryUseCase
	DeleteHistory      commands.DeleteHistoryRecordUseCase
	SetHistoryWeek     commands.SetHistoryWeekUseCase
	ListCampaigns      queries.ListCampaignsUseCase
	GetCampaign        queries.GetCampaignUseCase
	ListTasks          queries.ListTasksUseCase
	ListHistory        queries.ListHistoryUseCase
	Logger             *slog.Logger
}

func (h Handler) CreateCampaignHandler(ctx context.Context, actingUser string, req httptransport.CreateCampaignRequest) (httptransport.CampaignResponse, error) {
	result, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		Name:               req.Name,
		Country:            req.Country,
		Vertical:           req.Vertical,
		Platform:           req.Platform,
		Segment:            req.Segment,
		ExternalPlatformID: req.ExternalPlatformID,
		OwnerName:          req.OwnerName,
		ShortDescription:   req.ShortDescription,
		Objective:          req.Objective,
		Benefit:            req.Benefit,
		Description:        req.Description,
		ReportURL:          req.ReportURL,
		ActingUser:         actingUser,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(result.Campaign)}, nil
}

func (h Handler) UpdateCampaignHandler(ctx context.Context, actingUser string, campaignID string, req httptransport.UpdateCampaignRequest) (httptransport.CampaignResponse, error) {
	result, err := h.UpdateCampaign.Execute(ctx, commands.UpdateCampaignCommand{
		CampaignID:         campaignID,
		ActingUser:         actingUser,
		Name:               req.Name,
		Country:            req.Country,
		Vertical:           req.Vertical,
		Platform:           req.Platform,
		Segment:            req.Segment,
		ExternalPlatformID: req.ExternalPlatformID,
		OwnerName:          req.OwnerName,
		ShortDescription:   req.ShortDescription,
		Objective:          req.Objective,
		Benefit:            req.Benefit,
		Description:        req.Description,
		ReportURL:          req.ReportURL,
		State:              req.State,
		Reach:              req.Reach,
		Clicks:             req.Clicks,
		Leads:              req.Leads,
		WeeklySpend:        req.WeeklySpend,
		DriversRegistered:  req.DriversRegistered,
		DriversFirstRide:   req.DriversFirstRide,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(result.Campaign)}, nil
}

func (h Handler) ArchiveCampaignHandler(ctx context.Context, actingUser string, campaignID string) (httptransport.CampaignResponse, error) {
	result, err := h.ArchiveCampaign.Execute(ctx, commands.ArchiveCampaignCommand{
		CampaignID: campaignID,
		ActingUser: actingUser,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{
		Campaign:       mapCampaign(result.Campaign),
		MissingMetrics: result.MissingMetrics,
	}, nil
}

func (h Handler) ReactivateCampaignHandler(ctx context.Context, actingUser string, campaignID string) (httptransport.CampaignResponse, error) {
	result, err := h.ReactivateCampaign.Execute(ctx, commands.ReactivateCampaignCommand{
		CampaignID: campaignID,
		ActingUser: actingUser,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(result.Campaign)}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.GetCampaignResponse, error) {
	result, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.GetCampaignResponse{}, err
	}
	creatives := make([]httptransport.CreativeDTO, 0, len(result.Creatives))
	for _, item := range result.Creatives {
		creatives = append(creatives, mapCreative(item))
	}
	return httptransport.GetCampaignResponse{
		Campaign:  mapCampaign(result.Campaign),
		Creatives: creatives,
	}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, state, country, vertical, platform, owner, week string) (httptransport.ListCampaignsResponse, error) {
	items, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{
		State:    state,
		Country:  country,
		Vertical: vertical,
		Platform: platform,
		Owner:    owner,
		Week:     week,
	})
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	result := make([]httptransport.CampaignDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaign(item))
	}
	return httptransport.ListCampaignsResponse{Items: result}, nil
}

func (h Handler) CreateCreativeHandler(ctx context.Context, actingUser string, campaignID string, req httptransport.CreateCreativeRequest) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Create(ctx, commands.CreateCreativeCommand{
		CampaignID:    campaignID,
		FileName:      req.FileName,
		ExternalURL:   req.ExternalURL,
		InlinePayload: req.InlinePayload,
		Position:      req.Position,
		Active:        req.Active,
		ActingUser:    actingUser,
	})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) UpdateCreativeHandler(ctx context.Context, actingUser string, creativeID string, req httptransport.UpdateCreativeRequest) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Update(ctx, commands.UpdateCreativeCommand{
		CreativeID:    creativeID,
		FileName:      req.FileName,
		ExternalURL:   req.ExternalURL,
		InlinePayload: req.InlinePayload,
		Position:      req.Position,
		ActingUser:    actingUser,
	})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) ActivateCreativeHandler(ctx context.Context, actingUser string, creativeID string) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Activate(ctx, commands.CreativeActionCommand{CreativeID: creativeID, ActingUser: actingUser})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) DiscardCreativeHandler(ctx context.Context, actingUser string, creativeID string) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Discard(ctx, commands.CreativeActionCommand{CreativeID: creativeID, ActingUser: actingUser})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) DeleteCreativeHandler(ctx context.Context, actingUser string, creativeID string) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Delete(ctx, commands.CreativeActionCommand{CreativeID: creativeID, ActingUser: actingUser})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) ReorderCreativesHandler(ctx context.Context, actingUser string, campaignID string, req httptransport.ReorderCreativesRequest) (httptransport.ListCreativesResponse, error) {
	items, err := h.Creatives.Reorder(ctx, commands.ReorderCreativesCommand{
		CampaignID:  campaignID,
		CreativeIDs: req.CreativeIDs,
		ActingUser:  actingUser,
	})
	if err != nil {
		return httptransport.ListCreativesResponse{}, err
	}
	result := make([]httptransport.CreativeDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCreative(item))
	}
	return httptransport.ListCreativesResponse{Items: result}, nil
}

func (h Handler) ResyncCreativeHandler(ctx context.Context, actingUser string, creativeID string) (httptransport.CreativeResponse, error) {
	result, err := h.Creatives.Resync(ctx, commands.CreativeActionCommand{CreativeID: creativeID, ActingUser: actingUser})
	if err != nil {
		return httptransport.CreativeResponse{}, err
	}
	return httptransport.CreativeResponse{
		Creative: mapCreative(result.Creative),
		Campaign: mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) GenerateTasksHandler(ctx context.Context) (httptransport.GenerateTasksResponse, error) {
	result, err := h.GenerateTasks.Execute(ctx)
	if err != nil {
		return httptransport.GenerateTasksResponse{}, err
	}
	return httptransport.GenerateTasksResponse{Created: result.Created}, nil
}

func (h Handler) CompleteTaskHandler(ctx context.Context, actingUser string, taskID string) (httptransport.TaskResponse, error) {
	result, err := h.CompleteTask.Execute(ctx, commands.CompleteTaskCommand{TaskID: taskID, ActingUser: actingUser})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(result.Task)}, nil
}

func (h Handler) DeriveTaskHandler(ctx context.Context, actingUser string, taskID string, req httptransport.DeriveTaskRequest) (httptransport.TaskResponse, error) {
	result, err := h.DeriveTask.Execute(ctx, commands.DeriveTaskCommand{
		TaskID:      taskID,
		NewAssignee: req.NewAssignee,
		ActingUser:  actingUser,
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(result.Task)}, nil
}

func (h Handler) ListTasksForUserHandler(ctx context.Context, assignee, role string) (httptransport.ListTasksResponse, error) {
	items, err := h.ListTasks.ForUser(ctx, queries.ListTasksForUserQuery{Assignee: assignee, Role: role})
	if err != nil {
		return httptransport.ListTasksResponse{}, err
	}
	return httptransport.ListTasksResponse{Items: mapTasks(items)}, nil
}

func (h Handler) ListTasksForCampaignHandler(ctx context.Context, campaignID string) (httptransport.ListTasksResponse, error) {
	items, err := h.ListTasks.ForCampaign(ctx, campaignID)
	if err != nil {
		return httptransport.ListTasksResponse{}, err
	}
	return httptransport.ListTasksResponse{Items: mapTasks(items)}, nil
}

func (h Handler) ListHistoryHandler(ctx context.Context, campaignID string) (httptransport.ListHistoryResponse, error) {
	items, err := h.ListHistory.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.ListHistoryResponse{}, err
	}
	result := make([]httptransport.WeeklyRecordDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapWeeklyRecord(item))
	}
	return httptransport.ListHistoryResponse{Items: result}, nil
}

func (h Handler) ImportHistoryHandler(ctx context.Context, actingUser string, body io.Reader) (httptransport.ImportHistoryResponse, error) {
	result, err := h.ImportHistory.Execute(ctx, commands.ImportHistoryCommand{Reader: body, ActingUser: actingUser})
	if err != nil {
		return httptransport.ImportHistoryResponse{}, err
	}
	return httptransport.ImportHistoryResponse{
		Created: result.Created,
		Updated: result.Updated,
		Skipped: result.Skipped,
	}, nil
}

func (h Handler) ListHistoryByWeekHandler(ctx context.Context, isoWeek int) (httptransport.ListHistoryResponse, error) {
	items, err := h.ListHistory.ByWeek(ctx, isoWeek)
	if err != nil {
		return httptransport.ListHistoryResponse{}, err
	}
	result := make([]httptransport.WeeklyRecordDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapWeeklyRecord(item))
	}
	return httptransport.ListHistoryResponse{Items: result}, nil
}

func (h Handler) SetHistoryWeekHandler(ctx context.Context, actingUser string, recordID string, req httptransport.SetHistoryWeekRequest) (httptransport.WeeklyRecordResponse, error) {
	result, err := h.SetHistoryWeek.Execute(ctx, commands.SetHistoryWeekCommand{
		RecordID:   recordID,
		ISOWeek:    req.ISOWeek,
		ActingUser: actingUser,
	})
	if err != nil {
		return httptransport.WeeklyRecordResponse{}, err
	}
	return httptransport.WeeklyRecordResponse{Record: mapWeeklyRecord(result.Record)}, nil
}

func (h Handler) DeleteHistoryHandler(ctx context.Context, actingUser string, recordID string) error {
	return h.DeleteHistory.Execute(ctx, commands.DeleteHistoryRecordCommand{RecordID: recordID, ActingUser: actingUser})
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:              item.CampaignID,
		Name:                    item.Name,
		Country:                 string(item.Country),
		Vertical:                string(item.Vertical),
		Platform:                string(item.Platform),
		Segment:                 string(item.Segment),
		ExternalPlatformID:      item.ExternalPlatformID,
		OwnerName:               item.OwnerName,
		OwnerInitials:           item.OwnerInitials,
		ShortDescription:        item.ShortDescription,
		Objective:               item.Objective,
		Benefit:                 item.Benefit,
		Description:             item.Description,
		ReportURL:               item.ReportURL,
		State:                   string(item.State),
		Reach:                   item.Reach,
		Clicks:                  item.Clicks,
		Leads:                   item.Leads,
		WeeklySpend:             item.WeeklySpend,
		CostPerLead:             item.CostPerLead,
		DriversRegistered:       item.DriversRegistered,
		DriversFirstRide:        item.DriversFirstRide,
		CostPerDriverRegistered: item.CostPerDriverRegistered,
		CostPerDriverFirstRide:  item.CostPerDriverFirstRide,
		ISOWeek:                 item.ISOWeek,
		CreatedAt:               item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapCreative(item entities.Creative) httptransport.CreativeDTO {
	return httptransport.CreativeDTO{
		CreativeID:    item.CreativeID,
		CampaignID:    item.CampaignID,
		FileName:      item.FileName,
		ExternalURL:   item.ExternalURL,
		InlinePayload: item.InlinePayload,
		Active:        item.Active,
		Position:      item.Position,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapTask(item entities.Task) httptransport.TaskDTO {
	dto := httptransport.TaskDTO{
		TaskID:      item.TaskID,
		CampaignID:  item.CampaignID,
		Type:        string(item.Type),
		Role:        string(item.Role),
		Assignee:    item.Assignee,
		Description: item.Description,
		Urgent:      item.Urgent,
		Completed:   item.Completed,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if item.CompletedAt != nil {
		dto.CompletedAt = item.CompletedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func mapTasks(items []entities.Task) []httptransport.TaskDTO {
	result := make([]httptransport.TaskDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapTask(item))
	}
	return result
}

func mapWeeklyRecord(item entities.WeeklyRecord) httptransport.WeeklyRecordDTO {
	return httptransport.WeeklyRecordDTO{
		RecordID:                item.RecordID,
		CampaignID:              item.CampaignID,
		ISOWeek:                 item.ISOWeek,
		SnapshotAt:              item.SnapshotAt.UTC().Format(time.RFC3339),
		RecordedBy:              item.RecordedBy,
		Reach:                   item.Reach,
		Clicks:                  item.Clicks,
		Leads:                   item.Leads,
		WeeklySpend:             item.WeeklySpend,
		CostPerLead:             item.CostPerLead,
		DriversRegistered:       item.DriversRegistered,
		DriversFirstRide:        item.DriversFirstRide,
		CostPerDriverRegistered: item.CostPerDriverRegistered,
		CostPerDriverFirstRide:  item.CostPerDriverFirstRide,
	}
}
