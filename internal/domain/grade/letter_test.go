package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterFor_Bands(t *testing.T) {
	cases := []struct {
		average float64
		want    LetterGrade
	}{
		{100, LetterA},
		{90, LetterA},
		{89.999999, LetterB},
		{80, LetterB},
		{79.99, LetterC},
		{70, LetterC},
		{69.5, LetterD},
		{60, LetterD},
		{59.999, LetterF},
		{0, LetterF},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LetterFor(tc.average), "average %v", tc.average)
	}
}

func TestPassAndHonorThresholds(t *testing.T) {
	assert.True(t, IsPassing(60))
	assert.False(t, IsPassing(59.99))
	assert.True(t, IsHonorRoll(90))
	assert.False(t, IsHonorRoll(89.99))
}

func TestLetterGrade_IsValid(t *testing.T) {
	for _, l := range []LetterGrade{LetterA, LetterB, LetterC, LetterD, LetterF} {
		assert.True(t, l.IsValid())
	}
	assert.False(t, LetterGrade("E").IsValid())
}
