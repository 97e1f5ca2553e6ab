package participation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration) (*Cache, *time.Time) {
	cache := NewCache(ttl)
	current := date(2025, time.June, 18)
	cache.now = func() time.Time { return current }
	return cache, &current
}

func TestCache_GetPut(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	day := date(2025, time.June, 18)
	result := Result{CanParticipate: false, Restrictions: []string{"límite"}}

	_, ok := cache.Get("jperez", day)
	assert.False(t, ok)

	cache.Put("jperez", day, result)

	got, ok := cache.Get("jperez", day)
	require.True(t, ok)
	assert.Equal(t, result, got)

	// A different user or date is a miss.
	_, ok = cache.Get("mgarcia", day)
	assert.False(t, ok)
	_, ok = cache.Get("jperez", day.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestCache_KeyIgnoresTimeOfDay(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	day := date(2025, time.June, 18)

	cache.Put("jperez", day.Add(9*time.Hour), Result{CanParticipate: true})

	_, ok := cache.Get("jperez", day.Add(15*time.Hour))
	assert.True(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	cache, now := newTestCache(time.Minute)
	day := date(2025, time.June, 18)

	cache.Put("jperez", day, Result{CanParticipate: true})

	*now = now.Add(59 * time.Second)
	_, ok := cache.Get("jperez", day)
	assert.True(t, ok)

	*now = now.Add(2 * time.Second)
	_, ok = cache.Get("jperez", day)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_InvalidateUser(t *testing.T) {
	cache, _ := newTestCache(time.Minute)
	day := date(2025, time.June, 18)

	cache.Put("jperez", day, Result{CanParticipate: true})
	cache.Put("jperez", day.AddDate(0, 0, 1), Result{CanParticipate: true})
	cache.Put("mgarcia", day, Result{CanParticipate: true})

	cache.InvalidateUser("jperez")

	_, ok := cache.Get("jperez", day)
	assert.False(t, ok)
	_, ok = cache.Get("jperez", day.AddDate(0, 0, 1))
	assert.False(t, ok)
	_, ok = cache.Get("mgarcia", day)
	assert.True(t, ok)
}

func TestCache_InvalidateWeek(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	cache.Put("jperez", date(2025, time.June, 17), Result{CanParticipate: true})
	cache.Put("mgarcia", date(2025, time.June, 20), Result{CanParticipate: true})
	cache.Put("jperez", date(2025, time.June, 23), Result{CanParticipate: true})

	// Any day inside the week selects the whole week.
	cache.InvalidateWeek(date(2025, time.June, 19))

	_, ok := cache.Get("jperez", date(2025, time.June, 17))
	assert.False(t, ok)
	_, ok = cache.Get("mgarcia", date(2025, time.June, 20))
	assert.False(t, ok)
	_, ok = cache.Get("jperez", date(2025, time.June, 23))
	assert.True(t, ok)
}

func TestCache_DefaultTTL(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}
