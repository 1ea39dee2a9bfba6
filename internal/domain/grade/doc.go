// Package grade contains the domain model of a single student's grade record.
//
// The package defines:
//
//   - Entity: Record, owning a student's identity and grade list
//   - Value objects: LetterGrade and the grade bounds
//   - Parsing: ParseGrade, the explicit conversion of raw input into a grade value
//   - Domain events: RecordCreated, GradeAdded, GradeRemoved, GradeRejected
//
// # Validate, mutate, recompute
//
// Every mutating method validates its input first and returns an error without
// touching the record when validation fails. Accepted mutations change the grade
// list and then recompute the derived fields (average, letter grade, pass and
// honor roll flags) before returning, so derived fields never lag behind the list.
//
//	record, err := grade.NewRecord("S001", "Alice Johnson")
//	if err != nil {
//	    return err
//	}
//	if _, err := record.AddGrade("95.5"); err != nil {
//	    // shared.IsInvalidGrade(err) == true for bad input
//	}
//	summary := record.Summary()
//
// Record carries no lock. Callers sharing one record between goroutines must
// serialise access themselves.
package grade
