package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupThreads(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }
	timePtr := func(v time.Time) *time.Time { return &v }

	t.Run("groups comments under their review", func(t *testing.T) {
		flat := []threadRow{
			{reviewID: 2, username: "beth", bookTitle: "Dune", content: "Loved it", createdAt: base.Add(time.Hour),
				commentID: intPtr(10), commentUser: strPtr("carl"), commentBody: strPtr("Agreed"), commentAt: timePtr(base.Add(2 * time.Hour))},
			{reviewID: 2, username: "beth", bookTitle: "Dune", content: "Loved it", createdAt: base.Add(time.Hour),
				commentID: intPtr(11), commentUser: strPtr("dina"), commentBody: strPtr("Me too"), commentAt: timePtr(base.Add(3 * time.Hour))},
			{reviewID: 1, username: "alan", bookTitle: "Emma", content: "Slow start", createdAt: base,
				commentID: intPtr(12), commentUser: strPtr("beth"), commentBody: strPtr("It picks up"), commentAt: timePtr(base.Add(4 * time.Hour))},
		}

		threads := groupThreads(flat)
		require.Len(t, threads, 2)

		assert.Equal(t, 2, threads[0].ID)
		assert.Equal(t, "beth", threads[0].Username)
		require.Len(t, threads[0].Comments, 2)
		assert.Equal(t, "Agreed", threads[0].Comments[0].Content)
		assert.Equal(t, "dina", threads[0].Comments[1].Username)

		assert.Equal(t, 1, threads[1].ID)
		require.Len(t, threads[1].Comments, 1)
		assert.Equal(t, "It picks up", threads[1].Comments[0].Content)
	})

	t.Run("preserves first-seen review order", func(t *testing.T) {
		flat := []threadRow{
			{reviewID: 5, username: "beth", bookTitle: "Dune", content: "a", createdAt: base},
			{reviewID: 3, username: "alan", bookTitle: "Emma", content: "b", createdAt: base},
			{reviewID: 5, username: "beth", bookTitle: "Dune", content: "a", createdAt: base,
				commentID: intPtr(1), commentUser: strPtr("carl"), commentBody: strPtr("c"), commentAt: timePtr(base)},
		}

		threads := groupThreads(flat)
		require.Len(t, threads, 2)
		assert.Equal(t, 5, threads[0].ID)
		assert.Equal(t, 3, threads[1].ID)
		require.Len(t, threads[0].Comments, 1)
	})

	t.Run("review without comments gets empty slice", func(t *testing.T) {
		flat := []threadRow{
			{reviewID: 7, username: "alan", bookTitle: "Emma", content: "quiet", createdAt: base},
		}

		threads := groupThreads(flat)
		require.Len(t, threads, 1)
		assert.NotNil(t, threads[0].Comments)
		assert.Empty(t, threads[0].Comments)
	})

	t.Run("empty input yields no threads", func(t *testing.T) {
		assert.Empty(t, groupThreads(nil))
	})
}
