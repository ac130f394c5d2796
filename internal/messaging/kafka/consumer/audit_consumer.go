package consumer

import (
	"context"
	"encoding/json"

	"go-recruit/internal/bootstrap"
	"go-recruit/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle mengalirkan event lifecycle ke audit log.
// ChangeSet hasil workflow edit ikut tercatat di sini.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		entry, ok := auditEntryFor(msg)
		if !ok {
			log.Warn("unrecognized lifecycle event, skipping",
				zap.String("event_type", headerValue(msg, "event_type")),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, entry)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}
	}
}

func auditEntryFor(msg kafkago.Message) (bootstrap.AuditLog, bool) {
	switch headerValue(msg, "event_type") {
	case events.TypeEmployeeMigrated:
		var event events.EmployeeMigratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditLog{}, false
		}
		return bootstrap.AuditLog{
			Action:  "EMPLOYEE_MIGRATED",
			Message: "Candidate migrated to employee",
			Meta: map[string]any{
				"request_id":    event.RequestID,
				"employee_id":   event.EmployeeID,
				"employee_code": event.EmployeeCode,
				"candidate_id":  event.CandidateID,
			},
		}, true
	case events.TypeEmployeeUpdated:
		var event events.EmployeeUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditLog{}, false
		}
		return bootstrap.AuditLog{
			Action:  "EMPLOYEE_UPDATED",
			Message: "Employee record updated",
			Meta: map[string]any{
				"request_id":  event.RequestID,
				"employee_id": event.EmployeeID,
				"changes":     event.Changes,
			},
		}, true
	case events.TypeEmployeeTerminated:
		var event events.EmployeeTerminatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditLog{}, false
		}
		return bootstrap.AuditLog{
			Action:  "EMPLOYEE_TERMINATED",
			Message: "Employee terminated",
			Meta: map[string]any{
				"request_id":  event.RequestID,
				"employee_id": event.EmployeeID,
				"reason":      event.TerminationReason,
				"hard_delete": event.HardDelete,
			},
		}, true
	case events.TypeEmployeeRestored:
		var event events.EmployeeRestoredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditLog{}, false
		}
		return bootstrap.AuditLog{
			Action:  "EMPLOYEE_RESTORED",
			Message: "Employee restored",
			Meta: map[string]any{
				"request_id":  event.RequestID,
				"employee_id": event.EmployeeID,
			},
		}, true
	}

	return bootstrap.AuditLog{}, false
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
