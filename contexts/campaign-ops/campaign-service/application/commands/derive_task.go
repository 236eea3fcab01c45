package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type DeriveTaskCommand struct {
	TaskID      string
	NewAssignee string
	ActingUser  string
}

type DeriveTaskUseCase struct {
	Tasks  ports.TaskRepository
	Audit  ports.AuditSink
	Clock  ports.Clock
	Logger *slog.Logger
}

type DeriveTaskResult struct {
	Task entities.Task
}

func (uc DeriveTaskUseCase) Execute(ctx context.Context, cmd DeriveTaskCommand) (DeriveTaskResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	newAssignee := strings.TrimSpace(cmd.NewAssignee)
	if newAssignee == "" {
		return DeriveTaskResult{}, domainerrors.ErrInvalidTaskInput
	}

	task, err := uc.Tasks.GetTask(ctx, cmd.TaskID)
	if err != nil {
		return DeriveTaskResult{}, err
	}

	previous := task.Assignee
	task.Assignee = newAssignee
	task.Description = entities.AnnotateDerivation(task.Description, cmd.ActingUser, previous)
	if err := uc.Tasks.UpdateTask(ctx, task); err != nil {
		return DeriveTaskResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "task",
		Action:     "derive",
		EntityID:   task.TaskID,
		ActorName:  cmd.ActingUser,
		Summary:    "task reassigned from " + previous + " to " + newAssignee,
		OccurredAt: uc.Clock.Now().UTC(),
	})
	logger.Info("task derived",
		"event", "task_derived",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"task_id", task.TaskID,
		"campaign_id", task.CampaignID,
		"from_assignee", previous,
		"to_assignee", newAssignee,
	)
	return DeriveTaskResult{Task: task}, nil
}
