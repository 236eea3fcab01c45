package workers

import (
	"context"
	"log/slog"
	"time"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/application/commands"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

// WeeklySweeper guarantees that metric-upload tasks for live campaigns
// become visible every Monday even if no mutation touched them that
// week. Cooperative and idempotent, running it twice creates nothing.
type WeeklySweeper struct {
	Campaigns ports.CampaignRepository
	Tasks     commands.TaskReconciler
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (j WeeklySweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)

	campaigns, err := j.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{State: entities.StateActive})
	if err != nil {
		logger.Error("weekly task sweep failed",
			"event", "weekly_task_sweep_failed",
			"module", "campaign-ops/campaign-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	created := 0
	for _, campaign := range campaigns {
		for _, taskType := range []entities.TaskType{entities.TaskUploadTrafficMetrics, entities.TaskUploadDriverMetrics} {
			_, fresh, err := j.Tasks.EnsureTask(ctx, campaign, taskType)
			if err != nil {
				return err
			}
			if fresh {
				created++
			}
		}
	}
	logger.Info("weekly task sweep completed",
		"event", "weekly_task_sweep_completed",
		"module", "campaign-ops/campaign-service",
		"layer", "worker",
		"active_campaigns", len(campaigns),
		"created_count", created,
	)
	return nil
}

// NextMonday returns the coming Monday at the given hour, used by the
// worker loop to schedule the sweep.
func NextMonday(now time.Time, hour int) time.Time {
	day := now
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	next := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
