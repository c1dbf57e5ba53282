package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTaskLike(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"Submit the report by Friday", true},
		{"CALL John tomorrow", true},
		{"The invoice is attached.", true},
		{"Please follow up with Anna", true},
		{"Follow-up with Anna", true},
		{"I like apples.", false},
		{"Submitted it already", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTaskLike(tt.sentence), tt.sentence)
	}
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		sentence string
		want     string
	}{
		{"Submit the report by Friday urgent", PriorityHigh},
		{"Fix the build ASAP!", PriorityHigh},
		{"We need to review this soon", PriorityMedium},
		{"I need to call mom", PriorityMedium},
		{"Maybe clean the garage", PriorityLow},
		{"Do it when possible", PriorityLow},
		{"Critical: maybe later", PriorityHigh},
		{"Call John tomorrow", PriorityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPriority(tt.sentence), tt.sentence)
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		sentence string
		want     string
	}{
		{"Submit the report by Friday", CategoryWork},
		{"Team meeting on Monday", CategoryWork},
		{"Take the car to the garage", CategoryPersonal},
		{"Finish the essay tomorrow", CategoryDeadline},
		{"Call John tomorrow", CategoryMeeting},
		{"Dentist appointment next week", CategoryPersonal},
		{"Buy milk today", CategoryUncategorized},
		{"Prepare the report.", CategoryWork},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCategory(tt.sentence), tt.sentence)
	}
}
