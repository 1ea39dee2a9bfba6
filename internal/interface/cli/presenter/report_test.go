package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/grade"
)

func TestFormatReport(t *testing.T) {
	r, err := grade.NewRecord("S001", "Alice Johnson")
	require.NoError(t, err)
	for _, g := range []float64{95.5, 87.0, 92.0, 88.5} {
		_, err := r.AddGrade(g)
		require.NoError(t, err)
	}

	out := NewReportPresenter(50, "=").FormatReport(query.NewGetReportHandler().Handle(r))

	rule := strings.Repeat("=", 50)
	want := "\n" + rule + "\n" +
		"STUDENT SUMMARY REPORT\n" +
		rule + "\n" +
		"Student ID: S001\n" +
		"Student Name: Alice Johnson\n" +
		"Number of Grades: 4\n" +
		"Grades: [95.5, 87.0, 92.0, 88.5]\n" +
		"Average Grade: 90.75\n" +
		"Letter Grade: A\n" +
		"Pass/Fail Status: PASSED\n" +
		"Honor Roll: YES\n" +
		rule + "\n"
	assert.Equal(t, want, out)
}

func TestNewReportPresenter_Defaults(t *testing.T) {
	p := NewReportPresenter(0, "")
	assert.Equal(t, strings.Repeat("=", 50), p.Rule())

	assert.Equal(t, "--", NewReportPresenter(2, "-").Rule())
}

func TestFormatGrades(t *testing.T) {
	assert.Equal(t, "[]", FormatGrades(nil))
	assert.Equal(t, "[45.0, 55.0, 65.0]", FormatGrades([]float64{45, 55, 65}))
}
