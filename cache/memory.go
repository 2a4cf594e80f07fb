package cache

import (
	"context"
	"sync"
	"time"
)

var _ ICache = &MemoryCache{}

type _Entry struct {
	data    []byte
	expires time.Time
	seq     uint64
}

// In-process cache.
//
// Expired entries are dropped when read and by a sweep on Set at most once per
// minute. With max_entries > 0 storing a new key into a full cache evicts the
// oldest stored entry.
type MemoryCache struct {
	mu          sync.Mutex
	entries     map[string]_Entry
	max_entries int
	seq         uint64
	next_sweep  time.Time
	now         func() time.Time
}

const _SweepInterval = time.Minute

func NewMemoryCache(max_entries int) *MemoryCache {
	return &MemoryCache{
		entries:     make(map[string]_Entry),
		max_entries: max_entries,
		now:         time.Now,
	}
}

func (self *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	entry, ok := self.entries[key]
	if !ok {
		return nil, false, nil
	}
	if entry.isExpired(self.now()) {
		delete(self.entries, key)
		return nil, false, nil
	}
	return entry.data, true, nil
}

func (self *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	now := self.now()
	entry := _Entry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.expires = now.Add(ttl)
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	if now.After(self.next_sweep) {
		self._Sweep(now)
		self.next_sweep = now.Add(_SweepInterval)
	}
	if _, ok := self.entries[key]; !ok && self.max_entries > 0 && len(self.entries) >= self.max_entries {
		self._Sweep(now)
		if len(self.entries) >= self.max_entries {
			self._EvictOldest()
		}
	}
	self.seq += 1
	entry.seq = self.seq
	self.entries[key] = entry
	return nil
}

func (self *MemoryCache) Delete(ctx context.Context, key string) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	delete(self.entries, key)
	return nil
}

func (self *MemoryCache) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.entries)
}

func (self *MemoryCache) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	clear(self.entries)
	return nil
}

func (self *MemoryCache) _Sweep(now time.Time) {
	for key, entry := range self.entries {
		if entry.isExpired(now) {
			delete(self.entries, key)
		}
	}
}

func (self *MemoryCache) _EvictOldest() {
	var oldest string
	var oldest_seq uint64
	found := false
	for key, entry := range self.entries {
		if !found || entry.seq < oldest_seq {
			oldest = key
			oldest_seq = entry.seq
			found = true
		}
	}
	if found {
		delete(self.entries, oldest)
	}
}

func (self _Entry) isExpired(now time.Time) bool {
	return !self.expires.IsZero() && now.After(self.expires)
}
