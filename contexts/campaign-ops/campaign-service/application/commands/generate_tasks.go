package commands

import (
	"context"
	"log/slog"

	application "adtrack/contexts/campaign-ops/campaign-service/application"
)

type GenerateTasksUseCase struct {
	Tasks  TaskReconciler
	Logger *slog.Logger
}

type GenerateTasksResult struct {
	Created int
}

// Execute runs the bulk reconciliation pass over every non-archived
// campaign. Idempotent: a second run with no state change creates
// nothing.
func (uc GenerateTasksUseCase) Execute(ctx context.Context) (GenerateTasksResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	created, err := uc.Tasks.GenerateAll(ctx)
	if err != nil {
		return GenerateTasksResult{}, err
	}
	logger.Info("pending task generation finished",
		"event", "pending_tasks_generated",
		"module", "campaign-ops/campaign-service",
		"layer", "application",
		"created", created,
	)
	return GenerateTasksResult{Created: created}, nil
}
