package services

import (
	"errors"
	"sync"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// ErrNotInCache is returned by ReplaceOne when the id is not present.
var ErrNotInCache = errors.New("menu item not found in cache")

// MenuCache holds the last-known-good snapshot of the catalog. It is only
// mutated after the upstream confirms an operation, never speculatively.
// Order is whatever the last full load returned, with newly created items
// appended at the end. One cache instance belongs to one CatalogService;
// the lock only guards reads against the periodic refresh replacing the
// snapshot underneath them.
type MenuCache struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMenuCache() *MenuCache {
	return &MenuCache{}
}

// ReplaceAll swaps in a fresh snapshot, discarding prior contents.
func (mc *MenuCache) ReplaceAll(items []models.MenuItem) {
	snapshot := make([]models.MenuItem, len(items))
	copy(snapshot, items)

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items = snapshot
}

// Append adds a confirmed newly created item at the end.
func (mc *MenuCache) Append(item models.MenuItem) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items = append(mc.items, item)
}

// ReplaceOne swaps the entry with the given id in place.
func (mc *MenuCache) ReplaceOne(id uint, item models.MenuItem) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for i := range mc.items {
		if mc.items[i].ID == id {
			mc.items[i] = item
			return nil
		}
	}
	return ErrNotInCache
}

// Remove deletes the entry with the given id, if present.
func (mc *MenuCache) Remove(id uint) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for i := range mc.items {
		if mc.items[i].ID == id {
			mc.items = append(mc.items[:i], mc.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the full snapshot in cache order.
func (mc *MenuCache) Items() []models.MenuItem {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]models.MenuItem, len(mc.items))
	copy(out, mc.items)
	return out
}

// ViewByGroup returns the items of one tab, preserving cache order.
func (mc *MenuCache) ViewByGroup(group models.Group) []models.MenuItem {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]models.MenuItem, 0)
	for _, item := range mc.items {
		if item.Group == group {
			out = append(out, item)
		}
	}
	return out
}

// Len reports the number of cached items.
func (mc *MenuCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}

// CountByGroup returns the per-tab item counts for the stats cards. Every
// group is present in the result, empty tabs included.
func (mc *MenuCache) CountByGroup() map[models.Group]int {
	counts := make(map[models.Group]int, len(models.Groups()))
	for _, g := range models.Groups() {
		counts[g] = 0
	}

	mc.mu.RLock()
	defer mc.mu.RUnlock()
	for _, item := range mc.items {
		counts[item.Group]++
	}
	return counts
}
