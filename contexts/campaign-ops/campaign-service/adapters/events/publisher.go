package eventsadapter

import (
	"context"
	"log/slog"

	"adtrack/contexts/campaign-ops/campaign-service/ports"
	"adtrack/internal/shared/events"
)

const (
	// AuditTopic carries every audit entry recorded by the service.
	AuditTopic = "campaign-ops.audit"

	sourceService  = "campaign-ops/campaign-service"
	payloadVersion = 1
)

// Bus is the slice of the event bus this adapter needs.
type Bus interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

// AuditPublisher decorates an audit sink with a bus publication per
// entry. Persistence failures propagate; publish failures are logged
// and swallowed, the bus gets the same best-effort treatment as the
// sink itself.
type AuditPublisher struct {
	Next   ports.AuditSink
	Bus    Bus
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (p AuditPublisher) Record(ctx context.Context, entry ports.AuditEntry) error {
	if p.Next != nil {
		if err := p.Next.Record(ctx, entry); err != nil {
			return err
		}
	}
	if p.Bus == nil {
		return nil
	}

	eventID := ""
	if p.IDGen != nil {
		id, err := p.IDGen.NewID(ctx)
		if err == nil {
			eventID = id
		}
	}
	envelope := events.Envelope{
		EventID:        eventID,
		EventType:      entry.EntityType + "." + entry.Action,
		SourceService:  sourceService,
		OccurredAtUTC:  entry.OccurredAt,
		EntityType:     entry.EntityType,
		EntityID:       entry.EntityID,
		PayloadVersion: payloadVersion,
		Payload: map[string]string{
			"actor":   entry.ActorName,
			"summary": entry.Summary,
			"details": entry.Details,
		},
	}
	if err := p.Bus.Publish(ctx, AuditTopic, envelope); err != nil && p.Logger != nil {
		p.Logger.Warn("audit event publish failed",
			"event", "audit_event_publish_failed",
			"module", "campaign-ops/campaign-service",
			"layer", "adapter",
			"entity_type", entry.EntityType,
			"entity_id", entry.EntityID,
			"error", err.Error(),
		)
	}
	return nil
}
