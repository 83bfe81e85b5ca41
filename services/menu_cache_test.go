package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

func sampleItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Adobo", Price: 280, Description: "classic", Category: models.CategoryBestSeller, Group: models.GroupMainCourse},
		{ID: 2, Name: "Lumpia", Price: 180, Description: "fried", Category: models.CategoryNone, Group: models.GroupAppetizer},
		{ID: 3, Name: "Halo-Halo", Price: 150, Description: "cold", Category: models.CategorySpecialty, Group: models.GroupDessert},
		{ID: 4, Name: "Sago't Gulaman", Price: 60, Description: "sweet", Category: models.CategoryNone, Group: models.GroupBeverage},
		{ID: 5, Name: "Sisig", Price: 320, Description: "sizzling", Category: models.CategoryMostBought, Group: models.GroupMainCourse},
	}
}

func TestMenuCacheReplaceAll(t *testing.T) {
	cache := NewMenuCache()
	cache.Append(models.MenuItem{ID: 99, Name: "Stale", Group: models.GroupDessert})

	cache.ReplaceAll(sampleItems())

	items := cache.Items()
	assert.Len(t, items, 5)
	assert.Equal(t, uint(1), items[0].ID, "cache order follows the load order")
	assert.Equal(t, uint(5), items[4].ID)
}

func TestMenuCacheAppendKeepsOrder(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	cache.Append(models.MenuItem{ID: 6, Name: "Leche Flan", Group: models.GroupDessert})

	items := cache.Items()
	assert.Equal(t, uint(6), items[len(items)-1].ID, "created items go at the end")
}

func TestMenuCacheReplaceOne(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	updated := models.MenuItem{ID: 2, Name: "Lumpia", Price: 200, Description: "fried", Category: models.CategoryNone, Group: models.GroupAppetizer}
	assert.NoError(t, cache.ReplaceOne(2, updated))

	items := cache.Items()
	assert.Equal(t, 200, items[1].Price)
	assert.Equal(t, "Lumpia", items[1].Name)
	assert.Len(t, items, 5)

	assert.ErrorIs(t, cache.ReplaceOne(42, updated), ErrNotInCache)
}

func TestMenuCacheRemove(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	cache.Remove(3)
	assert.Equal(t, 4, cache.Len())

	// Removing an absent id changes nothing.
	cache.Remove(3)
	assert.Equal(t, 4, cache.Len())
}

func TestViewByGroupPartition(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	// Every view only contains its own group, and the views together cover
	// the whole cache with no duplicates.
	seen := make(map[uint]int)
	total := 0
	for _, group := range models.Groups() {
		for _, item := range cache.ViewByGroup(group) {
			assert.Equal(t, group, item.Group)
			seen[item.ID]++
			total++
		}
	}

	assert.Equal(t, cache.Len(), total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %d appears exactly once", id)
	}
}

func TestViewByGroupDoesNotMutate(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	view := cache.ViewByGroup(models.GroupMainCourse)
	assert.Len(t, view, 2)
	view[0].Name = "Tampered"

	assert.Equal(t, "Adobo", cache.Items()[0].Name)
}

func TestCountByGroupIncludesEmptyTabs(t *testing.T) {
	cache := NewMenuCache()
	cache.ReplaceAll(sampleItems())

	counts := cache.CountByGroup()
	assert.Equal(t, 2, counts[models.GroupMainCourse])
	assert.Equal(t, 1, counts[models.GroupAppetizer])
	assert.Equal(t, 0, counts[models.GroupComboMeal], "empty tabs still report zero")
	assert.Len(t, counts, len(models.Groups()))
}
