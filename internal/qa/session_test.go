package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ragqa/ragqa-api/internal/domain"
)

func TestDistribute(t *testing.T) {
	cases := []struct {
		name   string
		target int
		chunks int
		cap    int
		want   []int
	}{
		{"even split", 6, 3, 3, []int{2, 2, 2}},
		{"remainder to first chunks", 7, 3, 10, []int{3, 2, 2}},
		{"target below chunk count", 2, 3, 3, []int{1, 1, 0}},
		{"cap binds", 30, 3, 3, []int{3, 3, 3}},
		{"single chunk", 5, 1, 10, []int{5}},
		{"no cap", 9, 2, 0, []int{5, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, distribute(tc.target, tc.chunks, tc.cap))
		})
	}
}

func TestSessionAcceptDedupAndTargetCap(t *testing.T) {
	sess := newSession(3, 2, 3, 4)

	accepted := sess.accept([]domain.QAPair{
		{Question: "What is A?", Answer: "a"},
		{Question: "what  is a?", Answer: "duplicate"},
		{Question: "What is B?", Answer: "b"},
	})
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 1, sess.needed)

	accepted = sess.accept([]domain.QAPair{
		{Question: "What is C?", Answer: "c"},
		{Question: "What is D?", Answer: "dropped, target already met"},
	})
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 0, sess.needed)
	assert.Len(t, sess.pairs, 3)

	// First-seen order is preserved.
	assert.Equal(t, "What is A?", sess.pairs[0].Question)
	assert.Equal(t, "What is B?", sess.pairs[1].Question)
	assert.Equal(t, "What is C?", sess.pairs[2].Question)
}
