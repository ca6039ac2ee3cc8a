package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectKey(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	assert.Equal(t, "1712345678901-cat.png", NewObjectKey(now, "cat.png"))
}

func TestNewObjectKey_SameMillisecondCollides(t *testing.T) {
	// Same-millisecond collisions are a known property of the key scheme.
	now := time.UnixMilli(1712345678901)
	assert.Equal(t, NewObjectKey(now, "cat.png"), NewObjectKey(now, "cat.png"))
}

func TestBatchReport_Counts(t *testing.T) {
	r := &BatchReport{Outcomes: []UploadOutcome{
		{Key: "1-a.png", Name: "a.png"},
		{Key: "2-b.png", Name: "b.png", Err: assert.AnError},
		{Key: "3-c.png", Name: "c.png"},
	}}

	assert.Equal(t, 2, r.Succeeded())
	assert.Equal(t, 1, r.Failed())
	assert.True(t, r.Outcomes[1].Failed())
	assert.False(t, r.Outcomes[0].Failed())
}
