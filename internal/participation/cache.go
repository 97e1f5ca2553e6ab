package participation

import (
	"sync"
	"time"
)

// Cache memoizes validation results per (user, date) with a fixed
// expiry. Staleness cannot produce a wrong save because the
// authoritative check is always recomputable; the cache only spares the
// grid from re-fetching history on every cell render.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

type cacheKey struct {
	userName string
	date     string
}

type cacheEntry struct {
	result    Result
	weekStart string
	expires   time.Time
}

// DefaultCacheTTL matches the grid refresh cadence.
const DefaultCacheTTL = 2 * time.Minute

// NewCache creates a cache with the given TTL. A non-positive TTL falls
// back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) key(userName string, date time.Time) cacheKey {
	return cacheKey{userName: userName, date: dateOnly(date).Format("2006-01-02")}
}

// Get returns a cached result if present and not expired.
func (c *Cache) Get(userName string, date time.Time) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[c.key(userName, date)]
	if !ok {
		return Result{}, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, c.key(userName, date))
		return Result{}, false
	}
	return entry.result, true
}

// Put stores a result for (userName, date).
func (c *Cache) Put(userName string, date time.Time, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[c.key(userName, date)] = cacheEntry{
		result:    result,
		weekStart: WeekStart(date).Format("2006-01-02"),
		expires:   c.now().Add(c.ttl),
	}
}

// InvalidateUser drops every cached result for a volunteer. Called when
// their own assignments change.
func (c *Cache) InvalidateUser(userName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.userName == userName {
			delete(c.entries, key)
		}
	}
}

// InvalidateWeek drops every cached result whose date falls in the week
// starting at weekStart. Called after a week of the schedule is saved.
func (c *Cache) InvalidateWeek(weekStart time.Time) {
	ws := WeekStart(weekStart).Format("2006-01-02")

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.weekStart == ws {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries, expired ones included until
// their next lookup.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
