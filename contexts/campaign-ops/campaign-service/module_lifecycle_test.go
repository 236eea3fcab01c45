package campaignservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	campaignservice "adtrack/contexts/campaign-ops/campaign-service"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	httptransport "adtrack/contexts/campaign-ops/campaign-service/transport/http"
)

func newCampaignRequest(name string) httptransport.CreateCampaignRequest {
	return httptransport.CreateCampaignRequest{
		Name:      name,
		Country:   "PE",
		Vertical:  "CARGO",
		Platform:  "FB",
		Segment:   "ACQUISITION",
		OwnerName: "Juan Perez",
	}
}

func newCreativeRequest(fileName string) httptransport.CreateCreativeRequest {
	return httptransport.CreateCreativeRequest{
		FileName:    fileName,
		ExternalURL: "https://cdn.example.com/" + fileName,
	}
}

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func TestCreateCampaignForcesPendingAndPreviousWeek(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)
	module.Store.SetNow(time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC))

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Cargo Launch"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if created.Campaign.State != "pending" {
		t.Fatalf("expected pending state, got %s", created.Campaign.State)
	}
	if created.Campaign.ISOWeek != 23 {
		t.Fatalf("expected recorded week 23, got %d", created.Campaign.ISOWeek)
	}
	if created.Campaign.OwnerInitials != "JP" {
		t.Fatalf("expected owner initials JP, got %s", created.Campaign.OwnerInitials)
	}

	tasks, err := module.Handler.ListTasksForCampaignHandler(context.Background(), created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	if len(tasks.Items) != 1 || tasks.Items[0].Type != "send_creative" {
		t.Fatalf("expected a single send_creative task, got %+v", tasks.Items)
	}
}

func TestCreateCampaignDefaultsBlankName(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("   "))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if created.Campaign.Name != "Untitled campaign" {
		t.Fatalf("expected the default name, got %q", created.Campaign.Name)
	}
}

func TestCreateCampaignRejectsUnknownCountry(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	req := newCampaignRequest("Bad Country")
	req.Country = "BR"
	_, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", req)
	if !errors.Is(err, domainerrors.ErrInvalidCampaignInput) {
		t.Fatalf("expected invalid campaign input, got %v", err)
	}
}

func TestFirstCreativeMovesPendingToCreativeSent(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Creative Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	result, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", created.Campaign.CampaignID, newCreativeRequest("banner.png"))
	if err != nil {
		t.Fatalf("create creative failed: %v", err)
	}
	if result.Campaign.State != "creative_sent" {
		t.Fatalf("expected creative_sent, got %s", result.Campaign.State)
	}
}

func TestDiscardingLastCreativeFallsBackToPending(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Discard Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	creative, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", created.Campaign.CampaignID, newCreativeRequest("banner.png"))
	if err != nil {
		t.Fatalf("create creative failed: %v", err)
	}

	discarded, err := module.Handler.DiscardCreativeHandler(context.Background(), "ana", creative.Creative.CreativeID)
	if err != nil {
		t.Fatalf("discard creative failed: %v", err)
	}
	if discarded.Campaign.State != "pending" {
		t.Fatalf("expected pending after last discard, got %s", discarded.Campaign.State)
	}

	// Re-running the same reconciliation path is a no-op.
	again, err := module.Handler.GetCampaignHandler(context.Background(), created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if again.Campaign.State != "pending" {
		t.Fatalf("expected state to stay pending, got %s", again.Campaign.State)
	}
}

func TestSixthActiveCreativeIsRejected(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Limit Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	names := []string{"a.png", "b.png", "c.png", "d.png", "e.png"}
	for _, name := range names {
		if _, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", created.Campaign.CampaignID, newCreativeRequest(name)); err != nil {
			t.Fatalf("create creative %s failed: %v", name, err)
		}
	}

	_, err = module.Handler.CreateCreativeHandler(context.Background(), "ana", created.Campaign.CampaignID, newCreativeRequest("f.png"))
	if !errors.Is(err, domainerrors.ErrActiveCreativeLimit) {
		t.Fatalf("expected active creative limit, got %v", err)
	}

	detail, err := module.Handler.GetCampaignHandler(context.Background(), created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if len(detail.Creatives) != 5 {
		t.Fatalf("expected creative set unchanged at 5, got %d", len(detail.Creatives))
	}
}

func TestManualStateChangeIsForwardOnly(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Manual State"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	updated, err := module.Handler.UpdateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.UpdateCampaignRequest{
		State: str("active"),
	})
	if err != nil {
		t.Fatalf("forward state change failed: %v", err)
	}
	if updated.Campaign.State != "active" {
		t.Fatalf("expected active, got %s", updated.Campaign.State)
	}

	_, err = module.Handler.UpdateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.UpdateCampaignRequest{
		State: str("pending"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
}

func TestArchiveSnapshotsMetricsAndFlagsIncomplete(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)
	module.Store.SetNow(time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC))

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Archive Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if _, err := module.Handler.UpdateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.UpdateCampaignRequest{
		Reach:       i64(1000),
		Clicks:      i64(50),
		Leads:       i64(5),
		WeeklySpend: f64(100),
	}); err != nil {
		t.Fatalf("metric update failed: %v", err)
	}

	archived, err := module.Handler.ArchiveCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if archived.Campaign.State != "archived" {
		t.Fatalf("expected archived, got %s", archived.Campaign.State)
	}
	if !archived.MissingMetrics {
		t.Fatalf("expected missing metrics flag, driver metrics were never supplied")
	}

	history, err := module.Handler.ListHistoryHandler(context.Background(), created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("list history failed: %v", err)
	}
	if len(history.Items) != 1 {
		t.Fatalf("expected one ledger row, got %d", len(history.Items))
	}
	row := history.Items[0]
	if row.ISOWeek != 23 {
		t.Fatalf("expected snapshot under week 23, got %d", row.ISOWeek)
	}
	if row.Reach == nil || *row.Reach != 1000 || row.Clicks == nil || *row.Clicks != 50 {
		t.Fatalf("unexpected snapshot values: %+v", row)
	}
	if row.WeeklySpend == nil || *row.WeeklySpend != 100 || row.Leads == nil || *row.Leads != 5 {
		t.Fatalf("unexpected snapshot values: %+v", row)
	}
	if row.CostPerLead == nil || *row.CostPerLead != 20 {
		t.Fatalf("expected derived cost per lead 20, got %+v", row.CostPerLead)
	}
}

func TestArchiveRejectsNegativeSpend(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Negative Spend"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if _, err := module.Handler.UpdateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.UpdateCampaignRequest{
		WeeklySpend: f64(-10),
	}); err != nil {
		t.Fatalf("metric update failed: %v", err)
	}

	_, err = module.Handler.ArchiveCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID)
	if !errors.Is(err, domainerrors.ErrNegativeMetricValue) {
		t.Fatalf("expected negative metric rejection, got %v", err)
	}

	detail, err := module.Handler.GetCampaignHandler(context.Background(), created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if detail.Campaign.State == "archived" {
		t.Fatalf("state must not change on rejected archive")
	}
}

func TestReactivateOnlyFromArchived(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Reactivate Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	_, err = module.Handler.ReactivateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID)
	if !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition for pending campaign, got %v", err)
	}

	if _, err := module.Handler.ArchiveCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	reactivated, err := module.Handler.ReactivateCampaignHandler(context.Background(), "ana", created.Campaign.CampaignID)
	if err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if reactivated.Campaign.State != "active" {
		t.Fatalf("expected active after reactivation, got %s", reactivated.Campaign.State)
	}
}

func TestListCampaignsFiltersByOwnerAndWeek(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)
	module.Store.SetNow(time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC))

	if _, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Juan Week 23")); err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	other := newCampaignRequest("Lucia Week 24")
	other.OwnerName = "Lucia Torres"
	module.Store.SetNow(time.Date(2023, time.June, 22, 10, 0, 0, 0, time.UTC))
	if _, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", other); err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	byOwner, err := module.Handler.ListCampaignsHandler(context.Background(), "", "", "", "", "lucia torres", "")
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if len(byOwner.Items) != 1 || byOwner.Items[0].Name != "Lucia Week 24" {
		t.Fatalf("expected only Lucia's campaign, got %+v", byOwner.Items)
	}

	// Clock still reads week 25, so "previous" resolves to 24.
	previous, err := module.Handler.ListCampaignsHandler(context.Background(), "", "", "", "", "", "previous")
	if err != nil {
		t.Fatalf("list previous week failed: %v", err)
	}
	if len(previous.Items) != 1 || previous.Items[0].Name != "Lucia Week 24" {
		t.Fatalf("expected the week 24 campaign, got %+v", previous.Items)
	}

	byWeek, err := module.Handler.ListCampaignsHandler(context.Background(), "", "", "", "", "", "23")
	if err != nil {
		t.Fatalf("list by week failed: %v", err)
	}
	if len(byWeek.Items) != 1 || byWeek.Items[0].Name != "Juan Week 23" {
		t.Fatalf("expected the week 23 campaign, got %+v", byWeek.Items)
	}
}

func TestReorderCreativesRewritesPositions(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "ana", newCampaignRequest("Reorder Flow"))
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	var ids []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		creative, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", created.Campaign.CampaignID, newCreativeRequest(name))
		if err != nil {
			t.Fatalf("create creative %s failed: %v", name, err)
		}
		ids = append(ids, creative.Creative.CreativeID)
	}

	reordered, err := module.Handler.ReorderCreativesHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.ReorderCreativesRequest{
		CreativeIDs: []string{ids[2], ids[0], ids[1]},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(reordered.Items) != 3 {
		t.Fatalf("expected three creatives, got %d", len(reordered.Items))
	}
	for i, want := range []string{ids[2], ids[0], ids[1]} {
		if reordered.Items[i].CreativeID != want || reordered.Items[i].Position != i {
			t.Fatalf("unexpected order at %d: %+v", i, reordered.Items[i])
		}
	}

	_, err = module.Handler.ReorderCreativesHandler(context.Background(), "ana", created.Campaign.CampaignID, httptransport.ReorderCreativesRequest{
		CreativeIDs: []string{"not-ours"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidCreativeInput) {
		t.Fatalf("expected invalid input for a foreign id, got %v", err)
	}
}

func TestResyncActiveCreativeRaisesPushTask(t *testing.T) {
	campaign := seededCampaign("cmp-1", "Resync Flow", entities.StateActive)
	campaign.Reach = i64(1000)
	campaign.Clicks = i64(80)
	campaign.Leads = i64(8)
	campaign.WeeklySpend = f64(120)
	campaign.DriversRegistered = i64(4)
	campaign.DriversFirstRide = i64(2)
	module := campaignservice.NewInMemoryModule([]entities.Campaign{campaign}, nil)

	creative, err := module.Handler.CreateCreativeHandler(context.Background(), "ana", "cmp-1", newCreativeRequest("hero.png"))
	if err != nil {
		t.Fatalf("create creative failed: %v", err)
	}
	open := incompleteTasks(t, module, "cmp-1")
	for _, task := range open {
		if task.Type == "send_creative" {
			if _, err := module.Handler.CompleteTaskHandler(context.Background(), "ana", task.TaskID); err != nil {
				t.Fatalf("complete failed: %v", err)
			}
		}
	}

	if _, err := module.Handler.ResyncCreativeHandler(context.Background(), "ana", creative.Creative.CreativeID); err != nil {
		t.Fatalf("resync failed: %v", err)
	}
	open = incompleteTasks(t, module, "cmp-1")
	var pushTasks int
	for _, task := range open {
		if task.Type == "send_creative" {
			pushTasks++
		}
	}
	if pushTasks != 1 {
		t.Fatalf("expected one re-raised send_creative task, got %d", pushTasks)
	}

	if _, err := module.Handler.DiscardCreativeHandler(context.Background(), "ana", creative.Creative.CreativeID); err != nil {
		t.Fatalf("discard failed: %v", err)
	}
	if _, err := module.Handler.ResyncCreativeHandler(context.Background(), "ana", creative.Creative.CreativeID); !errors.Is(err, domainerrors.ErrInvalidCreativeInput) {
		t.Fatalf("expected invalid input for inactive creative, got %v", err)
	}
}

func TestUnknownCampaignIsNotFound(t *testing.T) {
	module := campaignservice.NewInMemoryModule(nil, nil)

	_, err := module.Handler.GetCampaignHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected campaign not found, got %v", err)
	}
	_, err = module.Handler.ArchiveCampaignHandler(context.Background(), "ana", "missing")
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected campaign not found, got %v", err)
	}
}
