package events

import (
	"time"

	"go-recruit/internal/changeset"
)

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	TypeEmployeeMigrated   = "employee_migrated"
	TypeEmployeeUpdated    = "employee_updated"
	TypeEmployeeTerminated = "employee_terminated"
	TypeEmployeeRestored   = "employee_restored"
)

type EmployeeMigratedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	CandidateID  string    `json:"candidate_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EmployeeUpdatedEvent struct {
	EventType  string             `json:"event_type"`
	RequestID  string             `json:"request_id,omitempty"`
	EmployeeID string             `json:"employee_id"`
	Changes    []changeset.Change `json:"changes"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type EmployeeTerminatedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	EmployeeID        string    `json:"employee_id"`
	TerminationReason string    `json:"termination_reason"`
	HardDelete        bool      `json:"hard_delete"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type EmployeeRestoredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
