package adminsdk

import (
	"net/url"
	"sync"
)

// Tag is a logical cache-invalidation group. Queries declare the tags they
// provide; mutations declare the tags they invalidate. Invalidating a tag
// drops every cached response providing it, forcing the next query to
// refetch from the backend.
type Tag string

const (
	TagUsers        Tag = "users"
	TagProjects     Tag = "projects"
	TagAvailability Tag = "availability"
)

// TagCache stores raw query responses keyed by request path and parameters,
// grouped into invalidation tags.
type TagCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	subs    map[Tag][]func()
}

type cacheEntry struct {
	data []byte
	tags []Tag
}

// NewTagCache creates an empty cache.
func NewTagCache() *TagCache {
	return &TagCache{
		entries: make(map[string]cacheEntry),
		subs:    make(map[Tag][]func()),
	}
}

// Get returns the cached payload for key, if any.
func (tc *TagCache) Get(key string) ([]byte, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	entry, ok := tc.entries[key]
	if !ok {
		return nil, false
	}
	return entry.data, true
}

// Put stores a payload under key, associated with the tags it provides.
func (tc *TagCache) Put(key string, data []byte, tags ...Tag) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.entries[key] = cacheEntry{data: data, tags: tags}
}

// Invalidate drops every entry providing any of the given tags and then runs
// the subscribers registered for those tags. Subscribers run outside the
// lock, so a refetch hook may repopulate the cache immediately.
func (tc *TagCache) Invalidate(tags ...Tag) {
	tc.mu.Lock()

	invalidated := make(map[Tag]bool, len(tags))
	for _, tag := range tags {
		invalidated[tag] = true
	}

	for key, entry := range tc.entries {
		for _, tag := range entry.tags {
			if invalidated[tag] {
				delete(tc.entries, key)
				break
			}
		}
	}

	var hooks []func()
	for _, tag := range tags {
		hooks = append(hooks, tc.subs[tag]...)
	}
	tc.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Subscribe registers fn to run whenever tag is invalidated. Typical use is
// an eager refetch of a listing the caller keeps on screen.
func (tc *TagCache) Subscribe(tag Tag, fn func()) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.subs[tag] = append(tc.subs[tag], fn)
}

// Reset drops every cached entry. Subscriptions survive.
func (tc *TagCache) Reset() {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.entries = make(map[string]cacheEntry)
}

// Len reports the number of cached entries.
func (tc *TagCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.entries)
}

// cacheKey builds the cache key for a request path and its query parameters.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
