package kafka_test

import (
	"context"
	"testing"

	"go-recruit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     uuid.NewString(),
		AggregateType: "employee",
		AggregateID:   uuid.NewString(),
		EventType:     "employee_updated",
		Topic:         "hr.employee.lifecycle",
		Payload:       []byte(`{"employee_id":"x"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("insert joins the caller transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.WithTx(tx).Create(ctx, pendingEvent()))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete event rejected before touching the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)

		ev := pendingEvent()
		ev.Topic = ""
		assert.Error(t, repo.Create(ctx, ev))

		ev = pendingEvent()
		ev.Payload = nil
		assert.Error(t, repo.Create(ctx, ev))

		ev = pendingEvent()
		ev.Status = "queued"
		assert.Error(t, repo.Create(ctx, ev))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(pendingEvent()))

	ev := pendingEvent()
	ev.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(ev))
}
