// Package eventhandler contains domain event handlers.
// Handlers are the reactive part of the system: they turn events into side
// effects such as diagnostic log lines.
package eventhandler

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/alem-hub/gradebook/internal/domain/grade"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// DIAGNOSTICS HANDLER
// Reports what happened to a grade record: created records, added and
// removed grades, and rejected input with the reason.
// ═══════════════════════════════════════════════════════════════════════════

// Diagnostics logs grade events.
type Diagnostics struct {
	logger *logger.Logger
}

// NewDiagnostics creates a diagnostics handler writing to log.
func NewDiagnostics(log *logger.Logger) *Diagnostics {
	if log == nil {
		log = logger.Nop()
	}
	return &Diagnostics{logger: log.With(logger.Component("diagnostics"))}
}

// Register subscribes the handler to every grade event on bus.
func (d *Diagnostics) Register(bus shared.EventSubscriber) error {
	for _, t := range []shared.EventType{
		shared.EventRecordCreated,
		shared.EventGradeAdded,
		shared.EventGradeRemoved,
		shared.EventGradeRejected,
	} {
		if err := bus.Subscribe(t, d.Handle); err != nil {
			return fmt.Errorf("diagnostics: subscribe %s: %w", t, err)
		}
	}
	return nil
}

// Handle implements shared.EventHandler.
func (d *Diagnostics) Handle(event shared.Event) error {
	log := d.logger.With(
		logger.StudentID(event.AggregateID()),
		logger.EventID(event.EventID()),
	)

	switch e := event.(type) {
	case grade.RecordCreatedEvent:
		log.Info("Created student", logger.StudentName(e.StudentName))

	case grade.GradeAddedEvent:
		log.Debug(fmt.Sprintf("Added grade %s", grade.FormatValue(e.Value)),
			logger.GradeValue(e.Value),
			logger.Average(e.Average),
			logger.LetterGrade(e.LetterGrade.String()),
		)

	case grade.GradeRemovedEvent:
		if e.ByIndex() {
			log.Info(fmt.Sprintf("Removed grade %s at index %d", grade.FormatValue(e.Value), e.Index),
				logger.GradeValue(e.Value),
				logger.GradeIndex(e.Index),
				logger.Average(e.Average),
			)
			return nil
		}
		log.Info(fmt.Sprintf("Removed grade %s", grade.FormatValue(e.Value)),
			logger.GradeValue(e.Value),
			logger.Average(e.Average),
		)

	case grade.GradeRejectedEvent:
		log.Warn(rejectionMessage(e),
			logger.Operation(e.Op),
			logger.RawInput(e.Input),
			logger.String("reason", e.Reason),
		)

	default:
		return fmt.Errorf("diagnostics: unexpected event %T", event)
	}
	return nil
}

func rejectionMessage(e grade.GradeRejectedEvent) string {
	switch {
	case shared.IsNotFound(e.Err), shared.IsIndexOutOfRange(e.Err):
		var de *shared.DomainError
		if errors.As(e.Err, &de) && de.Message != "" {
			return capitalize(de.Message)
		}
		return "Grade not removed"
	case e.Op == "AddGrade":
		return fmt.Sprintf("Error adding grade %s", e.Input)
	default:
		return fmt.Sprintf("Error removing grade %s", e.Input)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
