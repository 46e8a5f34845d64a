package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c, err := New("redis://"+mr.Addr(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestScheduleCacheMissThenHit(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	entry, err := c.GetSchedule(ctx, 5784, "diaspora", []string{"yomtov"})
	require.NoError(t, err)
	require.Nil(t, entry)

	payload := map[string]string{"hello": "world"}
	require.NoError(t, c.SetSchedule(ctx, 5784, "diaspora", []string{"yomtov"}, payload))

	entry, err = c.GetSchedule(ctx, 5784, "diaspora", []string{"yomtov"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.JSONEq(t, `{"hello":"world"}`, string(entry.Data))
}

func TestScheduleKeyStableAcrossCategoryOrder(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetSchedule(ctx, 5784, "israel", []string{"omer", "chol"}, "x"))

	entry, err := c.GetSchedule(ctx, 5784, "israel", []string{"chol", "omer"})
	require.NoError(t, err)
	require.NotNil(t, entry)
}

func TestDailyStudyCacheRoundTrip(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDailyStudy(ctx, 5784, []string{"dafyomi"}, []int{1, 2, 3}))

	entry, err := c.GetDailyStudy(ctx, 5784, []string{"dafyomi"})
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.JSONEq(t, `[1,2,3]`, string(entry.Data))
}

func TestInvalidateYearRemovesBothKinds(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetSchedule(ctx, 5784, "diaspora", []string{"yomtov"}, "a"))
	require.NoError(t, c.SetDailyStudy(ctx, 5784, []string{"dafyomi"}, "b"))

	require.NoError(t, c.InvalidateYear(ctx, 5784))

	scheduleEntry, err := c.GetSchedule(ctx, 5784, "diaspora", []string{"yomtov"})
	require.NoError(t, err)
	require.Nil(t, scheduleEntry)

	studyEntry, err := c.GetDailyStudy(ctx, 5784, []string{"dafyomi"})
	require.NoError(t, err)
	require.Nil(t, studyEntry)
}
