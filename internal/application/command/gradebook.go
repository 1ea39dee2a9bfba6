// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/alem-hub/gradebook/internal/domain/grade"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GRADE BOOK
// Runs mutations against one grade record. The record itself stays silent;
// this handler serialises access, reports success as a boolean result and
// publishes an event for every accepted or rejected mutation.
// ══════════════════════════════════════════════════════════════════════════════

// CreateRecordCommand contains the identity of a new record.
type CreateRecordCommand struct {
	StudentID   string
	StudentName string

	// CorrelationID for tracing. Generated when empty.
	CorrelationID string
}

// AddGradeCommand adds one grade. Raw may be a number or numeric text.
type AddGradeCommand struct {
	Raw           any
	CorrelationID string
}

// RemoveGradeByValueCommand removes the first grade equal to Raw.
type RemoveGradeByValueCommand struct {
	Raw           any
	CorrelationID string
}

// RemoveGradeByIndexCommand removes the grade at Index.
type RemoveGradeByIndexCommand struct {
	Index         int
	CorrelationID string
}

// MutationResult describes the outcome of a mutation.
type MutationResult struct {
	// Success is false when the record was left unchanged.
	Success bool

	// Value is the grade that was added or removed.
	Value float64

	// Err is the rejection reason when Success is false.
	Err error

	// Summary is the record state after the call.
	Summary grade.Summary
}

// GradeBook owns one record and guards it with a mutex. Events are published
// while the lock is held, so handlers must not call back into the GradeBook.
type GradeBook struct {
	mu        sync.Mutex
	record    *grade.Record
	publisher shared.EventPublisher
	logger    *logger.Logger
}

// NewGradeBook constructs the record described by cmd. Construction failures
// are returned as-is and no GradeBook is created.
func NewGradeBook(
	ctx context.Context,
	cmd CreateRecordCommand,
	publisher shared.EventPublisher,
	log *logger.Logger,
) (*GradeBook, error) {
	if log == nil {
		log = logger.FromContext(ctx)
	}

	record, err := grade.NewRecord(cmd.StudentID, cmd.StudentName)
	if err != nil {
		log.Warn("record rejected",
			logger.StudentID(cmd.StudentID),
			logger.StudentName(cmd.StudentName),
			logger.Err(err),
		)
		return nil, fmt.Errorf("create_record: %w", err)
	}

	g := &GradeBook{
		record:    record,
		publisher: publisher,
		logger:    log.With(logger.Component("gradebook"), logger.StudentID(record.ID())),
	}

	event := grade.NewRecordCreatedEvent(record)
	event.BaseEvent = event.WithCorrelationID(correlationID(cmd.CorrelationID))
	g.publish(event)

	return g, nil
}

// StudentID returns the record's student ID.
func (g *GradeBook) StudentID() string {
	return g.record.ID()
}

// Summary returns the current record state.
func (g *GradeBook) Summary() grade.Summary {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Summary()
}

// AddGrade validates and appends a grade.
// The result is never nil; err mirrors result.Err.
func (g *GradeBook) AddGrade(ctx context.Context, cmd AddGradeCommand) (*MutationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cid := correlationID(cmd.CorrelationID)
	value, err := g.record.AddGrade(cmd.Raw)
	if err != nil {
		return g.reject(ctx, "AddGrade", cmd.Raw, cid, err)
	}

	event := grade.NewGradeAddedEvent(g.record, value)
	event.BaseEvent = event.WithCorrelationID(cid)
	g.publish(event)

	return g.accept(ctx, "AddGrade", value, cid), nil
}

// RemoveGradeByValue removes the first grade equal to the parsed value.
func (g *GradeBook) RemoveGradeByValue(ctx context.Context, cmd RemoveGradeByValueCommand) (*MutationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cid := correlationID(cmd.CorrelationID)
	value, err := g.record.RemoveGradeByValue(cmd.Raw)
	if err != nil {
		return g.reject(ctx, "RemoveGradeByValue", cmd.Raw, cid, err)
	}

	event := grade.NewGradeRemovedEvent(g.record, value, -1)
	event.BaseEvent = event.WithCorrelationID(cid)
	g.publish(event)

	return g.accept(ctx, "RemoveGradeByValue", value, cid), nil
}

// RemoveGradeByIndex removes the grade at the given position.
func (g *GradeBook) RemoveGradeByIndex(ctx context.Context, cmd RemoveGradeByIndexCommand) (*MutationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cid := correlationID(cmd.CorrelationID)
	value, err := g.record.RemoveGradeByIndex(cmd.Index)
	if err != nil {
		return g.reject(ctx, "RemoveGradeByIndex", cmd.Index, cid, err)
	}

	event := grade.NewGradeRemovedEvent(g.record, value, cmd.Index)
	event.BaseEvent = event.WithCorrelationID(cid)
	g.publish(event)

	return g.accept(ctx, "RemoveGradeByIndex", value, cid), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers (caller holds g.mu)
// ─────────────────────────────────────────────────────────────────────────────

func (g *GradeBook) accept(ctx context.Context, op string, value float64, cid string) *MutationResult {
	g.log(ctx).Debug("mutation applied",
		logger.Operation(op),
		logger.GradeValue(value),
		logger.Average(g.record.Average()),
		logger.LetterGrade(g.record.LetterGrade().String()),
		logger.CorrelationID(cid),
	)
	return &MutationResult{
		Success: true,
		Value:   value,
		Summary: g.record.Summary(),
	}
}

func (g *GradeBook) reject(ctx context.Context, op string, raw any, cid string, err error) (*MutationResult, error) {
	g.log(ctx).Debug("mutation rejected",
		logger.Operation(op),
		logger.CorrelationID(cid),
		logger.Err(err),
	)

	event := grade.NewGradeRejectedEvent(g.record, op, raw, err)
	event.BaseEvent = event.WithCorrelationID(cid)
	g.publish(event)

	wrapped := fmt.Errorf("%s: %w", op, err)
	return &MutationResult{
		Success: false,
		Err:     wrapped,
		Summary: g.record.Summary(),
	}, wrapped
}

func (g *GradeBook) publish(event shared.Event) {
	if g.publisher == nil {
		return
	}
	if err := g.publisher.Publish(event); err != nil {
		g.logger.Error("failed to publish event",
			logger.String("event_type", string(event.EventType())),
			logger.Err(err),
		)
	}
}

// log prefers a logger carried by ctx so callers can scope fields per call.
func (g *GradeBook) log(ctx context.Context) *logger.Logger {
	if l, ok := logger.Lookup(ctx); ok {
		return l
	}
	return g.logger
}

func correlationID(id string) string {
	if id != "" {
		return id
	}
	return shared.NewEventID()
}
