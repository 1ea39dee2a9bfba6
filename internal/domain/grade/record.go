package grade

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record holds one student's grades together with the statistics derived from them.
// Derived fields are only written by recompute.
type Record struct {
	id     string
	name   string
	grades []float64

	average     float64
	letterGrade LetterGrade
	passed      bool
	honorRoll   bool
}

// NewRecord creates an empty record. Both id and name are trimmed and must not be blank.
func NewRecord(id, name string) (*Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, shared.ErrBlankStudentID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrBlankStudentName
	}

	r := &Record{
		id:     id,
		name:   name,
		grades: make([]float64, 0),
	}
	r.recompute()
	return r, nil
}

// ID returns the student identifier.
func (r *Record) ID() string { return r.id }

// Name returns the student name.
func (r *Record) Name() string { return r.name }

// Grades returns a copy of the grade list in insertion order.
func (r *Record) Grades() []float64 {
	out := make([]float64, len(r.grades))
	copy(out, r.grades)
	return out
}

// Count returns the number of grades.
func (r *Record) Count() int { return len(r.grades) }

// Average returns the average as of the last mutation.
func (r *Record) Average() float64 { return r.average }

// LetterGrade returns the letter derived from the average.
func (r *Record) LetterGrade() LetterGrade { return r.letterGrade }

// Passed reports whether the average is at least PassingAverage.
func (r *Record) Passed() bool { return r.passed }

// HonorRoll reports whether the average is at least HonorRollAverage.
func (r *Record) HonorRoll() bool { return r.honorRoll }

// ─────────────────────────────────────────────────────────────────────────────
// MUTATIONS
// ─────────────────────────────────────────────────────────────────────────────

// AddGrade parses raw, appends it and recomputes. It returns the stored value.
func (r *Record) AddGrade(raw any) (float64, error) {
	value, err := parseGrade("AddGrade", raw)
	if err != nil {
		return 0, err
	}

	r.grades = append(r.grades, value)
	r.recompute()
	return value, nil
}

// RemoveGradeByValue removes the first grade exactly equal to raw.
func (r *Record) RemoveGradeByValue(raw any) (float64, error) {
	value, err := parseNumber("RemoveGradeByValue", raw)
	if err != nil {
		return 0, err
	}

	idx := r.indexOf(value)
	if idx < 0 {
		return 0, shared.NewDomainError("grade", "RemoveGradeByValue", shared.ErrNotFound,
			fmt.Sprintf("grade %s not found", FormatValue(value)))
	}

	r.grades = append(r.grades[:idx], r.grades[idx+1:]...)
	r.recompute()
	return value, nil
}

// RemoveGradeByIndex removes the grade at index and returns it.
func (r *Record) RemoveGradeByIndex(index int) (float64, error) {
	if index < 0 || index >= len(r.grades) {
		return 0, shared.NewDomainError("grade", "RemoveGradeByIndex", shared.ErrIndexOutOfRange,
			fmt.Sprintf("index %d is out of range (0-%d)", index, len(r.grades)-1))
	}

	removed := r.grades[index]
	r.grades = append(r.grades[:index], r.grades[index+1:]...)
	r.recompute()
	return removed, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DERIVED STATE
// ─────────────────────────────────────────────────────────────────────────────

// CalculateAverage returns the mean of the current grades, or 0 for none.
// It does not update the stored average.
func (r *Record) CalculateAverage() float64 {
	if len(r.grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range r.grades {
		sum += g
	}
	return sum / float64(len(r.grades))
}

func (r *Record) recompute() {
	avg := r.CalculateAverage()
	r.average = avg
	r.letterGrade = LetterFor(avg)
	r.passed = IsPassing(avg)
	r.honorRoll = IsHonorRoll(avg)
}

func (r *Record) indexOf(value float64) int {
	for i, g := range r.grades {
		if g == value {
			return i
		}
	}
	return -1
}

// ══════════════════════════════════════════════════════════════════════════════
// SUMMARY
// ══════════════════════════════════════════════════════════════════════════════

// Summary is a read-only snapshot of a record.
type Summary struct {
	StudentID   string
	StudentName string
	GradeCount  int
	Grades      []float64
	Average     float64
	LetterGrade LetterGrade
	Passed      bool
	HonorRoll   bool
}

// Summary returns the current state of the record.
func (r *Record) Summary() Summary {
	return Summary{
		StudentID:   r.id,
		StudentName: r.name,
		GradeCount:  len(r.grades),
		Grades:      r.Grades(),
		Average:     r.average,
		LetterGrade: r.letterGrade,
		Passed:      r.passed,
		HonorRoll:   r.honorRoll,
	}
}
