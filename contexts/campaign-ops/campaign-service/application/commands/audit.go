package commands

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

// recordAudit writes a trail entry and swallows the error. Audit is
// best effort: a failed write never rolls back the primary mutation.
func recordAudit(ctx context.Context, sink ports.AuditSink, logger *slog.Logger, entry ports.AuditEntry) {
	if sink == nil {
		return
	}
	if err := sink.Record(ctx, entry); err != nil {
		logger.Warn("audit write failed",
			"event", "audit_write_failed",
			"module", "campaign-ops/campaign-service",
			"layer", "application",
			"entity_type", entry.EntityType,
			"entity_id", entry.EntityID,
			"action", entry.Action,
			"error", err,
		)
	}
}
