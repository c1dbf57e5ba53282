package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		phrase   string
		want     string
	}{
		{
			name:     "removes matched phrase",
			sentence: "Submit the report by Friday urgent",
			phrase:   "Friday",
			want:     "Submit the report by urgent",
		},
		{
			name:     "phrase is case insensitive",
			sentence: "Submit the report by FRIDAY",
			phrase:   "friday",
			want:     "Submit the report by",
		},
		{
			name:     "phrase needs word boundaries",
			sentence: "Pay Fridays bill on Friday",
			phrase:   "Friday",
			want:     "Pay Fridays bill on",
		},
		{
			name:     "filler removed without phrase",
			sentence: "Call John tomorrow",
			phrase:   "",
			want:     "Call John",
		},
		{
			name:     "next and this fillers",
			sentence: "Plan the trip next week and book hotels this month",
			phrase:   "",
			want:     "Plan the trip and book hotels",
		},
		{
			name:     "next filler around a bare weekday phrase",
			sentence: "Book the car service next Friday",
			phrase:   "Friday",
			want:     "Book the car service",
		},
		{
			name:     "this filler around a bare weekday phrase",
			sentence: "Attend the meeting this Friday",
			phrase:   "Friday",
			want:     "Attend the meeting",
		},
		{
			name:     "in n days filler",
			sentence: "Pay the invoice in 3 days",
			phrase:   "in 3 days",
			want:     "Pay the invoice",
		},
		{
			name:     "phrase with punctuation",
			sentence: "Send the quote by 5 May, 2024, thanks",
			phrase:   "5 May, 2024,",
			want:     "Send the quote by thanks",
		},
		{
			name:     "priority words stay",
			sentence: "  Email   Bob today   urgent ",
			phrase:   "today",
			want:     "Email Bob urgent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSentence(tt.sentence, tt.phrase))
		})
	}
}
