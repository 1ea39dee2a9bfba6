package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/grade"
)

func TestGetReport_HonorStudent(t *testing.T) {
	r, err := grade.NewRecord("S001", "Alice Johnson")
	require.NoError(t, err)
	for _, g := range []float64{95.5, 92.0, 88.5} {
		_, err := r.AddGrade(g)
		require.NoError(t, err)
	}

	dto := NewGetReportHandler().Handle(r)

	assert.Equal(t, "S001", dto.StudentID)
	assert.Equal(t, "Alice Johnson", dto.StudentName)
	assert.Equal(t, 3, dto.GradeCount)
	assert.Equal(t, []float64{95.5, 92.0, 88.5}, dto.Grades)
	assert.Equal(t, "91.83", dto.AverageText)
	assert.Equal(t, "A", dto.LetterGrade)
	assert.Equal(t, LabelPassed, dto.PassStatus)
	assert.Equal(t, LabelYes, dto.HonorRollLabel)
}

func TestGetReport_FailingStudent(t *testing.T) {
	r, err := grade.NewRecord("S002", "Bob Smith")
	require.NoError(t, err)
	for _, g := range []float64{45, 55, 65} {
		_, err := r.AddGrade(g)
		require.NoError(t, err)
	}

	dto := NewGetReportHandler().Handle(r)

	assert.Equal(t, "55.00", dto.AverageText)
	assert.Equal(t, "F", dto.LetterGrade)
	assert.Equal(t, LabelFailed, dto.PassStatus)
	assert.Equal(t, LabelNo, dto.HonorRollLabel)
}

func TestGetReport_Empty(t *testing.T) {
	dto := NewReportDTO(grade.Summary{StudentID: "S9", StudentName: "N", LetterGrade: grade.LetterF})

	assert.Equal(t, []float64{}, dto.Grades)
	assert.Equal(t, "0.00", dto.AverageText)
	assert.Equal(t, LabelFailed, dto.PassStatus)
}
