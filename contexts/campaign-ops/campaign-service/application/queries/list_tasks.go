package queries

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type ListTasksForUserQuery struct {
	Assignee string
	Role     string
}

type ListTasksUseCase struct {
	Tasks  ports.TaskRepository
	Logger *slog.Logger
}

// ForUser lists the incomplete tasks visible to a person: tasks
// assigned to them by name plus tasks routed to their role. Admins
// see every open task.
func (uc ListTasksUseCase) ForUser(ctx context.Context, query ListTasksForUserQuery) ([]entities.Task, error) {
	incomplete := false
	filter := ports.TaskFilter{
		Assignee:  query.Assignee,
		Completed: &incomplete,
	}
	if query.Role != "" {
		if role, ok := entities.ParseTaskRole(query.Role); ok {
			if role == entities.RoleAdmin {
				filter.Assignee = ""
			} else {
				filter.Role = role
			}
		}
	}
	return uc.Tasks.ListTasks(ctx, filter)
}

// ForCampaign lists every task, complete or not, attached to a campaign.
func (uc ListTasksUseCase) ForCampaign(ctx context.Context, campaignID string) ([]entities.Task, error) {
	return uc.Tasks.ListTasksByCampaign(ctx, campaignID)
}
