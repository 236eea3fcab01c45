package commands

import (
	"context"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type CompleteTaskCommand struct {
	TaskID     string
	ActingUser string
}

type CompleteTaskUseCase struct {
	Tasks  ports.TaskRepository
	Audit  ports.AuditSink
	Clock  ports.Clock
	Logger *slog.Logger
}

type CompleteTaskResult struct {
	Task entities.Task
}

func (uc CompleteTaskUseCase) Execute(ctx context.Context, cmd CompleteTaskCommand) (CompleteTaskResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	task, err := uc.Tasks.GetTask(ctx, cmd.TaskID)
	if err != nil {
		return CompleteTaskResult{}, err
	}
	if task.Completed {
		// Completion time is stamped exactly once.
		return CompleteTaskResult{Task: task}, nil
	}

	now := uc.Clock.Now().UTC()
	task.Completed = true
	task.CompletedAt = &now
	if err := uc.Tasks.UpdateTask(ctx, task); err != nil {
		return CompleteTaskResult{}, err
	}

	recordAudit(ctx, uc.Audit, logger, ports.AuditEntry{
		EntityType: "task",
		Action:     "complete",
		EntityID:   task.TaskID,
		ActorName:  cmd.ActingUser,
		Summary:    "task completed: " + string(task.Type),
		OccurredAt: now,
	})
	logger.Info("task completed",
		"event", "task_completed",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"task_id", task.TaskID,
		"campaign_id", task.CampaignID,
		"task_type", string(task.Type),
	)
	return CompleteTaskResult{Task: task}, nil
}
