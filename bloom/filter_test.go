package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/quizgrab/bloom"
	"github.com/stretchr/testify/assert"
)

func TestURLSet_AddAndSeen(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000, 0.01)

	assert.False(t, s.Seen("https://example.com/t1/"))
	s.Add("https://example.com/t1/")
	assert.True(t, s.Seen("https://example.com/t1/"))
}

func TestURLSet_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(10000, 0.01)

	for i := 0; i < 1000; i++ {
		s.Add(fmt.Sprintf("https://example.com/test-%d/", i))
	}
	for i := 0; i < 1000; i++ {
		assert.True(t, s.Seen(fmt.Sprintf("https://example.com/test-%d/", i)))
	}
}

func TestURLSet_ApproxLen(t *testing.T) {
	t.Parallel()

	s := bloom.NewURLSet(1000, 0.01)
	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("https://example.com/%d", i))
	}

	n := s.ApproxLen()
	assert.InDelta(t, 100, float64(n), 10)
}
