package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecoverNoDate(t *testing.T) {
	m, ok := recoverNoDate(func() (DateMatch, bool) { panic("index out of range") })
	assert.False(t, ok)
	assert.Equal(t, DateMatch{}, m)

	want := DateMatch{Phrase: "tomorrow", Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)}
	m, ok = recoverNoDate(func() (DateMatch, bool) { return want, true })
	assert.True(t, ok)
	assert.Equal(t, want, m)
}
