package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Demo(t *testing.T) {
	t.Setenv("GRADEBOOK_LOG_LEVEL", "error")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	text := out.String()
	assert.Contains(t, text, "Created student: Alice Johnson (ID: S001)")
	assert.Equal(t, 3, strings.Count(text, "STUDENT SUMMARY REPORT"))

	// first report: four valid grades, the invalid ones were rejected
	assert.Contains(t, text, "Grades: [95.5, 87.0, 92.0, 88.5]\nAverage Grade: 90.75\n")
	// after removing 87.0 and index 0
	assert.Contains(t, text, "Grades: [92.0, 88.5]\nAverage Grade: 90.25\nLetter Grade: A\n")
	// second student
	assert.Contains(t, text, "Student ID: S002\n")
	assert.Contains(t, text, "Average Grade: 55.00\nLetter Grade: F\nPass/Fail Status: FAILED\nHonor Roll: NO\n")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("GRADEBOOK_REPORT_WIDTH", "1")

	var out bytes.Buffer
	err := run(context.Background(), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
