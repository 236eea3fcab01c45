package campaignservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	campaignservice "adtrack/contexts/campaign-ops/campaign-service"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	httptransport "adtrack/contexts/campaign-ops/campaign-service/transport/http"
)

func seededCampaign(id, name string, state entities.CampaignState) entities.Campaign {
	now := time.Date(2023, time.June, 12, 9, 0, 0, 0, time.UTC)
	return entities.Campaign{
		CampaignID:    id,
		Name:          name,
		Country:       entities.CountryPE,
		Vertical:      entities.VerticalCargo,
		Platform:      entities.PlatformFacebook,
		Segment:       entities.SegmentAcquisition,
		OwnerName:     "Maria Gomez",
		OwnerInitials: "MG",
		State:         state,
		ISOWeek:       23,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func incompleteTasks(t *testing.T, module campaignservice.Module, campaignID string) []httptransport.TaskDTO {
	t.Helper()
	tasks, err := module.Handler.ListTasksForCampaignHandler(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	var open []httptransport.TaskDTO
	for _, task := range tasks.Items {
		if !task.Completed {
			open = append(open, task)
		}
	}
	return open
}

func TestGenerateTasksIsIdempotent(t *testing.T) {
	seed := []entities.Campaign{
		seededCampaign("cmp-1", "Cargo Lima", entities.StatePending),
		seededCampaign("cmp-2", "Moto Bogota", entities.StateCreativeSent),
	}
	module := campaignservice.NewInMemoryModule(seed, nil)

	first, err := module.Handler.GenerateTasksHandler(context.Background())
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	if first.Created != 2 {
		t.Fatalf("expected 2 created tasks, got %d", first.Created)
	}

	second, err := module.Handler.GenerateTasksHandler(context.Background())
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if second.Created != 0 {
		t.Fatalf("expected no new tasks on re-run, got %d", second.Created)
	}
}

func TestActiveCampaignMissingDriverMetricsGetsOneTask(t *testing.T) {
	campaign := seededCampaign("cmp-1", "Cargo Lima", entities.StateActive)
	campaign.Reach = i64(1000)
	campaign.Clicks = i64(80)
	campaign.Leads = i64(8)
	campaign.WeeklySpend = f64(120)
	module := campaignservice.NewInMemoryModule([]entities.Campaign{campaign}, nil)

	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	open := incompleteTasks(t, module, "cmp-1")
	if len(open) != 1 {
		t.Fatalf("expected exactly one incomplete task, got %d", len(open))
	}
	if open[0].Type != "upload_driver_metrics" {
		t.Fatalf("expected upload_driver_metrics, got %s", open[0].Type)
	}
	if open[0].Role != "owner" || open[0].Assignee != "Maria Gomez" {
		t.Fatalf("expected task routed to the owner, got role=%s assignee=%s", open[0].Role, open[0].Assignee)
	}
}

func TestCompleteDriverMetricsImpliesArchiveTask(t *testing.T) {
	campaign := seededCampaign("cmp-1", "Cargo Lima", entities.StateActive)
	campaign.Reach = i64(1000)
	campaign.Clicks = i64(80)
	campaign.Leads = i64(8)
	campaign.WeeklySpend = f64(120)
	module := campaignservice.NewInMemoryModule([]entities.Campaign{campaign}, nil)

	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	updated, err := module.Handler.UpdateCampaignHandler(context.Background(), "maria", "cmp-1", httptransport.UpdateCampaignRequest{
		DriversRegistered: i64(4),
		DriversFirstRide:  i64(2),
	})
	if err != nil {
		t.Fatalf("driver metric update failed: %v", err)
	}
	if updated.Campaign.CostPerDriverRegistered == nil || *updated.Campaign.CostPerDriverRegistered != 30 {
		t.Fatalf("expected derived cost per registered driver 30, got %+v", updated.Campaign.CostPerDriverRegistered)
	}

	tasks, err := module.Handler.ListTasksForCampaignHandler(context.Background(), "cmp-1")
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	var archiveTasks int
	for _, task := range tasks.Items {
		if task.Type == "archive_campaign" && !task.Completed {
			archiveTasks++
		}
	}
	if archiveTasks != 1 {
		t.Fatalf("expected one incomplete archive_campaign task, got %d", archiveTasks)
	}
}

func TestWeeklySweepIsIdempotent(t *testing.T) {
	campaign := seededCampaign("cmp-1", "Cargo Lima", entities.StateActive)
	module := campaignservice.NewInMemoryModule([]entities.Campaign{campaign}, nil)

	if err := module.Sweeper.RunOnce(context.Background()); err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}
	if err := module.Sweeper.RunOnce(context.Background()); err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}

	open := incompleteTasks(t, module, "cmp-1")
	types := map[string]int{}
	for _, task := range open {
		types[task.Type]++
	}
	if types["upload_traffic_metrics"] != 1 || types["upload_driver_metrics"] != 1 {
		t.Fatalf("expected one metric upload task per type, got %+v", types)
	}
}

func TestCompleteTaskIsIdempotent(t *testing.T) {
	module := campaignservice.NewInMemoryModule([]entities.Campaign{
		seededCampaign("cmp-1", "Cargo Lima", entities.StatePending),
	}, nil)

	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	open := incompleteTasks(t, module, "cmp-1")
	if len(open) != 1 {
		t.Fatalf("expected one open task, got %d", len(open))
	}

	done, err := module.Handler.CompleteTaskHandler(context.Background(), "maria", open[0].TaskID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !done.Task.Completed || done.Task.CompletedAt == "" {
		t.Fatalf("expected completed task with timestamp, got %+v", done.Task)
	}

	again, err := module.Handler.CompleteTaskHandler(context.Background(), "maria", open[0].TaskID)
	if err != nil {
		t.Fatalf("re-complete failed: %v", err)
	}
	if again.Task.CompletedAt != done.Task.CompletedAt {
		t.Fatalf("re-completing must keep the original timestamp")
	}
}

func TestDeriveTaskKeepsSingleMarker(t *testing.T) {
	module := campaignservice.NewInMemoryModule([]entities.Campaign{
		seededCampaign("cmp-1", "Cargo Lima", entities.StatePending),
	}, nil)

	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	open := incompleteTasks(t, module, "cmp-1")
	if len(open) != 1 {
		t.Fatalf("expected one open task, got %d", len(open))
	}

	first, err := module.Handler.DeriveTaskHandler(context.Background(), "ana", open[0].TaskID, httptransport.DeriveTaskRequest{NewAssignee: "Bruno"})
	if err != nil {
		t.Fatalf("first derive failed: %v", err)
	}
	if first.Task.Assignee != "Bruno" {
		t.Fatalf("expected assignee Bruno, got %s", first.Task.Assignee)
	}
	if !strings.Contains(first.Task.Description, "[Derived by ana from ") {
		t.Fatalf("expected derivation marker, got %q", first.Task.Description)
	}

	second, err := module.Handler.DeriveTaskHandler(context.Background(), "bruno", open[0].TaskID, httptransport.DeriveTaskRequest{NewAssignee: "Carla"})
	if err != nil {
		t.Fatalf("second derive failed: %v", err)
	}
	if strings.Count(second.Task.Description, "[Derived by") != 1 {
		t.Fatalf("expected a single marker, got %q", second.Task.Description)
	}
	if !strings.Contains(second.Task.Description, "[Derived by bruno from Bruno]") {
		t.Fatalf("marker must reflect the latest derivation, got %q", second.Task.Description)
	}

	_, err = module.Handler.DeriveTaskHandler(context.Background(), "carla", open[0].TaskID, httptransport.DeriveTaskRequest{NewAssignee: "  "})
	if !errors.Is(err, domainerrors.ErrInvalidTaskInput) {
		t.Fatalf("expected invalid task input for blank assignee, got %v", err)
	}
}

func TestDiscardLastActiveCreativeRaisesUrgentSendCreative(t *testing.T) {
	module := campaignservice.NewInMemoryModule([]entities.Campaign{
		seededCampaign("cmp-1", "Cargo Lima", entities.StateActive),
	}, nil)

	creative, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", "cmp-1", newCreativeRequest("hero.png"))
	if err != nil {
		t.Fatalf("create creative failed: %v", err)
	}
	if _, err := module.Handler.DiscardCreativeHandler(context.Background(), "ana", creative.Creative.CreativeID); err != nil {
		t.Fatalf("discard failed: %v", err)
	}

	open := incompleteTasks(t, module, "cmp-1")
	var urgent *httptransport.TaskDTO
	for i := range open {
		if open[i].Type == "send_creative" {
			urgent = &open[i]
		}
	}
	if urgent == nil {
		t.Fatalf("expected a send_creative task after the last discard, got %+v", open)
	}
	if !urgent.Urgent || urgent.Role != "marketing" {
		t.Fatalf("expected urgent marketing task, got %+v", urgent)
	}
}

func TestListTasksForUserMatchesAssigneeOrRole(t *testing.T) {
	active := seededCampaign("cmp-1", "Cargo Lima", entities.StateActive)
	module := campaignservice.NewInMemoryModule([]entities.Campaign{
		active,
		seededCampaign("cmp-2", "Moto Bogota", entities.StatePending),
	}, nil)

	// Active campaign with no metrics implies a trafficker and an
	// owner task; the pending one implies a marketing task.
	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	mine, err := module.Handler.ListTasksForUserHandler(context.Background(), "Maria Gomez", "trafficker")
	if err != nil {
		t.Fatalf("list for user failed: %v", err)
	}
	got := map[string]bool{}
	for _, task := range mine.Items {
		got[task.Type] = true
	}
	if !got["upload_driver_metrics"] {
		t.Fatalf("expected the task assigned to Maria by name, got %+v", mine.Items)
	}
	if !got["upload_traffic_metrics"] {
		t.Fatalf("expected the task routed to the trafficker role, got %+v", mine.Items)
	}
	if got["send_creative"] {
		t.Fatalf("marketing task matches neither name nor role, got %+v", mine.Items)
	}

	all, err := module.Handler.ListTasksForUserHandler(context.Background(), "Pedro Ruiz", "admin")
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("admin must see every open task, got %d", len(all.Items))
	}
}

func TestListTasksForUserFiltersCompleted(t *testing.T) {
	module := campaignservice.NewInMemoryModule([]entities.Campaign{
		seededCampaign("cmp-1", "Cargo Lima", entities.StatePending),
		seededCampaign("cmp-2", "Moto Bogota", entities.StatePending),
	}, nil)

	if _, err := module.Handler.GenerateTasksHandler(context.Background()); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	open := incompleteTasks(t, module, "cmp-1")
	if _, err := module.Handler.CompleteTaskHandler(context.Background(), "ana", open[0].TaskID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	mine, err := module.Handler.ListTasksForUserHandler(context.Background(), campaignservice.DefaultMarketingContact, "")
	if err != nil {
		t.Fatalf("list for user failed: %v", err)
	}
	for _, task := range mine.Items {
		if task.Completed {
			t.Fatalf("user task list must exclude completed tasks, got %+v", task)
		}
	}
	if len(mine.Items) != 1 {
		t.Fatalf("expected the remaining open task only, got %d", len(mine.Items))
	}
}
