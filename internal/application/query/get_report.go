// Package query contains read operations (CQRS - Queries).
package query

import (
	"strconv"

	"github.com/alem-hub/gradebook/internal/domain/grade"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET REPORT QUERY
// Projects a record onto the fields shown in a student summary report.
// ══════════════════════════════════════════════════════════════════════════════

// Labels used in reports.
const (
	LabelPassed = "PASSED"
	LabelFailed = "FAILED"
	LabelYes    = "YES"
	LabelNo     = "NO"
)

// SummarySource is anything that can describe a record, e.g. *grade.Record or
// *command.GradeBook.
type SummarySource interface {
	Summary() grade.Summary
}

// ReportDTO is the presentation-ready view of a record.
type ReportDTO struct {
	StudentID   string
	StudentName string
	GradeCount  int
	Grades      []float64

	// Average is the raw value; AverageText has two decimals.
	Average     float64
	AverageText string

	LetterGrade string

	Passed     bool
	PassStatus string

	HonorRoll      bool
	HonorRollLabel string
}

// GetReportHandler builds ReportDTOs.
type GetReportHandler struct{}

// NewGetReportHandler creates a new GetReportHandler.
func NewGetReportHandler() *GetReportHandler {
	return &GetReportHandler{}
}

// Handle reads the current state of src.
func (h *GetReportHandler) Handle(src SummarySource) ReportDTO {
	return NewReportDTO(src.Summary())
}

// NewReportDTO converts a summary into a ReportDTO.
func NewReportDTO(s grade.Summary) ReportDTO {
	dto := ReportDTO{
		StudentID:      s.StudentID,
		StudentName:    s.StudentName,
		GradeCount:     s.GradeCount,
		Grades:         s.Grades,
		Average:        s.Average,
		AverageText:    strconv.FormatFloat(s.Average, 'f', 2, 64),
		LetterGrade:    s.LetterGrade.String(),
		Passed:         s.Passed,
		PassStatus:     LabelFailed,
		HonorRoll:      s.HonorRoll,
		HonorRollLabel: LabelNo,
	}
	if dto.Grades == nil {
		dto.Grades = []float64{}
	}
	if s.Passed {
		dto.PassStatus = LabelPassed
	}
	if s.HonorRoll {
		dto.HonorRollLabel = LabelYes
	}
	return dto
}
