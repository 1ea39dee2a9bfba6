package grade

import (
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// Events describe what happened to a record so that reporting collaborators can
// react without the entity printing anything itself.
// ══════════════════════════════════════════════════════════════════════════════

// RecordCreatedEvent is emitted when a record is constructed.
type RecordCreatedEvent struct {
	shared.BaseEvent
	StudentName string `json:"student_name"`
}

// Payload implements Event interface.
func (e RecordCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id":   e.AggregateId,
		"student_name": e.StudentName,
	}
}

// NewRecordCreatedEvent creates a RecordCreatedEvent.
func NewRecordCreatedEvent(r *Record) RecordCreatedEvent {
	return RecordCreatedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventRecordCreated, r.ID()),
		StudentName: r.Name(),
	}
}

// GradeAddedEvent is emitted after a grade was appended.
type GradeAddedEvent struct {
	shared.BaseEvent
	Value       float64     `json:"value"`
	Average     float64     `json:"average"`
	LetterGrade LetterGrade `json:"letter_grade"`
}

// Payload implements Event interface.
func (e GradeAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"value":        e.Value,
		"average":      e.Average,
		"letter_grade": e.LetterGrade.String(),
	}
}

// NewGradeAddedEvent creates a GradeAddedEvent from the record state after the mutation.
func NewGradeAddedEvent(r *Record, value float64) GradeAddedEvent {
	return GradeAddedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventGradeAdded, r.ID()),
		Value:       value,
		Average:     r.Average(),
		LetterGrade: r.LetterGrade(),
	}
}

// GradeRemovedEvent is emitted after a grade was removed. Index is -1 for
// removals by value.
type GradeRemovedEvent struct {
	shared.BaseEvent
	Value       float64     `json:"value"`
	Index       int         `json:"index"`
	Average     float64     `json:"average"`
	LetterGrade LetterGrade `json:"letter_grade"`
}

// ByIndex reports whether the removal addressed a position.
func (e GradeRemovedEvent) ByIndex() bool {
	return e.Index >= 0
}

// Payload implements Event interface.
func (e GradeRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"value":        e.Value,
		"index":        e.Index,
		"average":      e.Average,
		"letter_grade": e.LetterGrade.String(),
	}
}

// NewGradeRemovedEvent creates a GradeRemovedEvent from the record state after the mutation.
func NewGradeRemovedEvent(r *Record, value float64, index int) GradeRemovedEvent {
	return GradeRemovedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventGradeRemoved, r.ID()),
		Value:       value,
		Index:       index,
		Average:     r.Average(),
		LetterGrade: r.LetterGrade(),
	}
}

// GradeRejectedEvent is emitted when a mutation failed validation.
type GradeRejectedEvent struct {
	shared.BaseEvent
	Op     string `json:"op"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Payload implements Event interface.
func (e GradeRejectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"op":     e.Op,
		"input":  e.Input,
		"reason": e.Reason,
	}
}

// NewGradeRejectedEvent creates a GradeRejectedEvent. input is the raw value as given.
func NewGradeRejectedEvent(r *Record, op string, input any, err error) GradeRejectedEvent {
	return GradeRejectedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventGradeRejected, r.ID()),
		Op:        op,
		Input:     quoteRaw(input),
		Reason:    err.Error(),
		Err:       err,
	}
}
