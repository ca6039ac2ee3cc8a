package netx

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader_ReportsCumulativeBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 10)

	var sents []int64
	var totals []int64
	pr := NewProgressReader(bytes.NewReader(payload), int64(len(payload)), func(sent, total int64) {
		sents = append(sents, sent)
		totals = append(totals, total)
	})

	out, err := io.ReadAll(pr)
	require.NoError(t, err)
	assert.Equal(t, payload, out)

	require.NotEmpty(t, sents)
	assert.Equal(t, int64(10), sents[len(sents)-1])
	for i := 1; i < len(sents); i++ {
		assert.GreaterOrEqual(t, sents[i], sents[i-1])
	}
	for _, total := range totals {
		assert.Equal(t, int64(10), total)
	}
}

func TestProgressReader_NilCallback(t *testing.T) {
	pr := NewProgressReader(bytes.NewReader([]byte("abc")), 3, nil)
	out, err := io.ReadAll(pr)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}
