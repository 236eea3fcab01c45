package commands

import (
	"context"
	"fmt"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

// TaskReconciler makes the set of incomplete tasks match what current
// campaign state implies. Generation is idempotent: the repository's
// CreateTaskIfAbsent is the single duplicate guard, so re-running a
// pass with no state change creates nothing.
type TaskReconciler struct {
	Campaigns         ports.CampaignRepository
	Tasks             ports.TaskRepository
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	MarketingContact  string
	TraffickerContact string
	Logger            *slog.Logger
}

func (r TaskReconciler) impliedTaskTypes(campaign entities.Campaign) []entities.TaskType {
	switch campaign.State {
	case entities.StatePending:
		return []entities.TaskType{entities.TaskSendCreative}
	case entities.StateCreativeSent:
		return []entities.TaskType{entities.TaskActivateCampaign}
	case entities.StateActive:
		var implied []entities.TaskType
		if !campaign.HasTrafficMetrics() {
			implied = append(implied, entities.TaskUploadTrafficMetrics)
		}
		if !campaign.HasDriverMetrics() {
			implied = append(implied, entities.TaskUploadDriverMetrics)
		}
		if len(implied) == 0 {
			implied = append(implied, entities.TaskArchiveCampaign)
		}
		return implied
	default:
		return nil
	}
}

func (r TaskReconciler) resolveAssignee(strategy entities.AssigneeStrategy, campaign entities.Campaign) string {
	switch strategy {
	case entities.AssignTraffickerContact:
		return r.TraffickerContact
	case entities.AssignCampaignOwner:
		if campaign.OwnerName != "" {
			return campaign.OwnerName
		}
		return r.MarketingContact
	default:
		return r.MarketingContact
	}
}

// EnsureTask creates the standard task of the given type for the
// campaign unless an incomplete one already exists.
func (r TaskReconciler) EnsureTask(ctx context.Context, campaign entities.Campaign, taskType entities.TaskType) (entities.Task, bool, error) {
	spec, ok := entities.SpecForTaskType(taskType)
	if !ok {
		return entities.Task{}, false, fmt.Errorf("no task spec for type %q", taskType)
	}
	taskID, err := r.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Task{}, false, err
	}
	task := entities.Task{
		TaskID:      taskID,
		CampaignID:  campaign.CampaignID,
		Type:        taskType,
		Role:        spec.Role,
		Assignee:    r.resolveAssignee(spec.Assignee, campaign),
		Description: entities.DescribeTask(taskType, campaign.Name),
		CreatedAt:   r.Clock.Now().UTC(),
	}
	return r.Tasks.CreateTaskIfAbsent(ctx, task)
}

// ReconcileCampaign derives the implied tasks for one campaign and
// returns how many were newly created.
func (r TaskReconciler) ReconcileCampaign(ctx context.Context, campaign entities.Campaign) (int, error) {
	logger := application.ResolveLogger(r.Logger)
	created := 0
	for _, taskType := range r.impliedTaskTypes(campaign) {
		task, fresh, err := r.EnsureTask(ctx, campaign, taskType)
		if err != nil {
			return created, err
		}
		if fresh {
			created++
			logger.Info("pending task created",
				"event", "pending_task_created",
				"module", "campaign-ops/campaign-service",
				"layer", "application",
				"campaign_id", campaign.CampaignID,
				"task_id", task.TaskID,
				"task_type", string(taskType),
				"assignee", task.Assignee,
			)
		}
	}
	return created, nil
}

// GenerateAll reconciles every non-archived campaign. Safe to run on
// demand or from the weekly scheduler.
func (r TaskReconciler) GenerateAll(ctx context.Context) (int, error) {
	campaigns, err := r.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{})
	if err != nil {
		return 0, err
	}
	created := 0
	for _, campaign := range campaigns {
		if campaign.State == entities.StateArchived {
			continue
		}
		n, err := r.ReconcileCampaign(ctx, campaign)
		if err != nil {
			return created, err
		}
		created += n
	}
	return created, nil
}

// RefreshSendCreative creates or refreshes the single incomplete
// send-creative task for a campaign. A repeat request rewrites the
// description, urgency and assignee of the existing task instead of
// adding a duplicate.
func (r TaskReconciler) RefreshSendCreative(
	ctx context.Context,
	campaign entities.Campaign,
	role entities.TaskRole,
	assignee string,
	description string,
	urgent bool,
) error {
	now := r.Clock.Now().UTC()
	existing, found, err := r.Tasks.FindIncompleteTask(ctx, campaign.CampaignID, entities.TaskSendCreative)
	if err != nil {
		return err
	}
	if found {
		existing.Role = role
		existing.Assignee = assignee
		existing.Description = description
		existing.Urgent = urgent
		existing.CreatedAt = now
		return r.Tasks.UpdateTask(ctx, existing)
	}
	taskID, err := r.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	_, _, err = r.Tasks.CreateTaskIfAbsent(ctx, entities.Task{
		TaskID:      taskID,
		CampaignID:  campaign.CampaignID,
		Type:        entities.TaskSendCreative,
		Role:        role,
		Assignee:    assignee,
		Description: description,
		Urgent:      urgent,
		CreatedAt:   now,
	})
	return err
}

// NotifyCreativeUpdated asks the trafficker to push a new or changed
// active creative to the ad platform. Only meaningful while the
// campaign is live.
func (r TaskReconciler) NotifyCreativeUpdated(ctx context.Context, campaign entities.Campaign) error {
	if campaign.State != entities.StateActive {
		return nil
	}
	description := fmt.Sprintf("Push the updated creative to the ad platform for: %s", campaign.Name)
	return r.RefreshSendCreative(ctx, campaign, entities.RoleTrafficker, r.TraffickerContact, description, false)
}

// NotifyCreativeDiscarded alerts marketing after a discard. With no
// active creatives left the task is urgent, otherwise informational.
func (r TaskReconciler) NotifyCreativeDiscarded(ctx context.Context, campaign entities.Campaign, remainingActive int) error {
	if campaign.State != entities.StateActive {
		return nil
	}
	if remainingActive == 0 {
		description := fmt.Sprintf("No active creatives remain for: %s, send a new creative", campaign.Name)
		return r.RefreshSendCreative(ctx, campaign, entities.RoleMarketing, r.MarketingContact, description, true)
	}
	description := fmt.Sprintf("A creative was discarded for: %s, %d still active", campaign.Name, remainingActive)
	return r.RefreshSendCreative(ctx, campaign, entities.RoleMarketing, r.MarketingContact, description, false)
}
