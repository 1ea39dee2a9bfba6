// Package presenter formats grade data for terminal display.
// Presenters convert query DTOs into plain-text blocks; they never touch the
// domain directly.
package presenter

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/grade"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// ReportTitle is the heading of a summary report.
const ReportTitle = "STUDENT SUMMARY REPORT"

// ReportPresenter renders summary reports.
type ReportPresenter struct {
	width     int
	separator string
}

// NewReportPresenter creates a presenter. width is the separator length;
// non-positive values fall back to 50, an empty separator to "=".
func NewReportPresenter(width int, separator string) *ReportPresenter {
	if width <= 0 {
		width = 50
	}
	if separator == "" {
		separator = "="
	}
	return &ReportPresenter{width: width, separator: separator}
}

// Rule returns one separator line without a trailing newline.
func (p *ReportPresenter) Rule() string {
	return strings.Repeat(p.separator, p.width)
}

// FormatReport renders dto as a multi-line block preceded by an empty line.
func (p *ReportPresenter) FormatReport(dto query.ReportDTO) string {
	var sb strings.Builder
	rule := p.Rule()

	sb.WriteString("\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(ReportTitle + "\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Student ID: %s\n", dto.StudentID)
	fmt.Fprintf(&sb, "Student Name: %s\n", dto.StudentName)
	fmt.Fprintf(&sb, "Number of Grades: %d\n", dto.GradeCount)
	fmt.Fprintf(&sb, "Grades: %s\n", FormatGrades(dto.Grades))
	fmt.Fprintf(&sb, "Average Grade: %s\n", dto.AverageText)
	fmt.Fprintf(&sb, "Letter Grade: %s\n", dto.LetterGrade)
	fmt.Fprintf(&sb, "Pass/Fail Status: %s\n", dto.PassStatus)
	fmt.Fprintf(&sb, "Honor Roll: %s\n", dto.HonorRollLabel)
	sb.WriteString(rule + "\n")

	return sb.String()
}

// FormatGrades renders a grade list as "[95.5, 87.0]".
func FormatGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = grade.FormatValue(g)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
