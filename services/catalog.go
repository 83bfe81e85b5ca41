package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/RichelleAnne09/agots-express-dashboard/gateway"
	"github.com/RichelleAnne09/agots-express-dashboard/models"
	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

// MenuGateway is the narrow contract the catalog needs from the upstream
// API. gateway.Client satisfies it; tests substitute a fake.
type MenuGateway interface {
	ListMenu(ctx context.Context) ([]gateway.MenuRecord, error)
	CreateMenuItem(ctx context.Context, fields gateway.MenuFields) (gateway.MenuRecord, error)
	UpdateMenuItem(ctx context.Context, id uint, fields gateway.MenuFields) (gateway.MenuRecord, error)
	DeleteMenuItem(ctx context.Context, id uint) error
}

// EditMode says whether a save creates a new item or replaces an existing one.
type EditMode struct {
	update bool
	id     uint
}

func CreateMode() EditMode         { return EditMode{} }
func UpdateMode(id uint) EditMode  { return EditMode{update: true, id: id} }
func (m EditMode) IsUpdate() bool  { return m.update }
func (m EditMode) TargetID() uint  { return m.id }

// SessionState is the lifecycle of one edit-dialog session.
type SessionState int

const (
	SessionEditing SessionState = iota
	SessionSaving
	SessionSucceeded
	SessionFailed
)

// CatalogService orchestrates the menu screen: validate, normalize, call
// the upstream, then reconcile the cache. One instance is built per
// dashboard session and owns its cache.
//
// Saves and deletes are serialized through a single writer lock so the
// concurrent HTTP surface cannot interleave two mutations. Load does not
// take the writer lock: overlapping loads are allowed and the last one to
// complete wins the cache.
type CatalogService struct {
	gw      MenuGateway
	cache   *MenuCache
	writeMu sync.Mutex
}

func NewCatalogService(gw MenuGateway, cache *MenuCache) *CatalogService {
	return &CatalogService{gw: gw, cache: cache}
}

// Cache exposes the owned snapshot for read views.
func (s *CatalogService) Cache() *MenuCache {
	return s.cache
}

// Load fetches the full catalog and replaces the cache snapshot. On failure
// the prior snapshot stays untouched.
func (s *CatalogService) Load(ctx context.Context) error {
	records, err := s.gw.ListMenu(ctx)
	if err != nil {
		return err
	}

	items := make([]models.MenuItem, 0, len(records))
	for _, record := range records {
		items = append(items, itemFromRecord(record))
	}
	s.cache.ReplaceAll(items)
	return nil
}

// Delete removes an item upstream, then from the cache. The cache is left
// untouched on failure; retrying is up to the user.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.gw.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	return nil
}

// EditSession is one pass through the edit dialog: Editing until Save is
// called, then Saving, then Succeeded or Failed. Both outcomes are
// terminal; after a failure the surface keeps the dialog open with the
// draft intact and a retry starts a new session.
type EditSession struct {
	svc    *CatalogService
	draft  models.MenuDraft
	mode   EditMode
	state  SessionState
	err    error
	result models.MenuItem
}

// Edit opens an editing session for the draft. The dialog is modal, so the
// caller guarantees at most one open session at a time.
func (s *CatalogService) Edit(draft models.MenuDraft, mode EditMode) *EditSession {
	return &EditSession{svc: s, draft: draft, mode: mode, state: SessionEditing}
}

func (es *EditSession) State() SessionState     { return es.state }
func (es *EditSession) Err() error              { return es.err }
func (es *EditSession) Result() models.MenuItem { return es.result }

// Save runs the full pipeline: validate, normalize the category for the
// wire, call the upstream, reconcile the cache. A validation failure never
// reaches the network. The cache is only touched after upstream success.
func (es *EditSession) Save(ctx context.Context) error {
	if es.state != SessionEditing {
		return es.err
	}

	if err := ValidateDraft(es.draft); err != nil {
		return es.fail(err)
	}
	es.state = SessionSaving

	fields := wireFields(es.draft)

	es.svc.writeMu.Lock()
	defer es.svc.writeMu.Unlock()

	var record gateway.MenuRecord
	var err error
	if es.mode.IsUpdate() {
		record, err = es.svc.gw.UpdateMenuItem(ctx, es.mode.TargetID(), fields)
	} else {
		record, err = es.svc.gw.CreateMenuItem(ctx, fields)
	}
	if err != nil {
		return es.fail(err)
	}

	item := itemFromRecord(record)
	if es.mode.IsUpdate() {
		if err := es.svc.cache.ReplaceOne(es.mode.TargetID(), item); err != nil {
			return es.fail(err)
		}
	} else {
		es.svc.cache.Append(item)
	}

	utils.InfoLogger.Printf("menu item %q saved (id=%d)", item.Name, item.ID)
	es.state = SessionSucceeded
	es.result = item
	return nil
}

func (es *EditSession) fail(err error) error {
	es.state = SessionFailed
	es.err = err
	return err
}

// wireFields builds the upstream payload from a validated draft. The "None"
// sentinel becomes null, the price string becomes an integer, and unset
// category/group fall back to their defaults.
func wireFields(draft models.MenuDraft) gateway.MenuFields {
	category := draft.Category
	if !models.ValidCategory(category) {
		category = models.CategoryNone
	}
	group := draft.Group
	if !models.ValidGroup(group) {
		group = models.GroupMainCourse
	}

	price, _ := strconv.Atoi(strings.TrimSpace(draft.Price))

	var description *string
	if draft.Description != "" {
		d := draft.Description
		description = &d
	}

	return gateway.MenuFields{
		Name:        draft.Name,
		Category:    models.WireCategory(category),
		Price:       price,
		Description: description,
		Group:       string(group),
	}
}

// itemFromRecord converts a wire record back to the display shape,
// re-denormalizing a null category into the "None" sentinel.
func itemFromRecord(record gateway.MenuRecord) models.MenuItem {
	description := ""
	if record.Description != nil {
		description = *record.Description
	}
	return models.MenuItem{
		ID:          record.ID,
		Name:        record.Name,
		Price:       record.Price,
		Description: description,
		Category:    models.DisplayCategory(record.Category),
		Group:       models.Group(record.Group),
	}
}
