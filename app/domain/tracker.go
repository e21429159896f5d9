package domain

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cat-tracker/app/models"
	"cat-tracker/app/store"

	"github.com/go-playground/validator/v10"
)

// Tracker owns the in-memory state: accounts, per-account record lists and
// the current session. Every mutation writes through to the store; on a
// write failure the mutation is kept in memory and the error is surfaced so
// the caller knows state may be lost on restart.
//
// Record lists preserve insertion order. That order doubles as the "latest"
// proxy for summaries and insights; only the trend series re-sorts by date.
type Tracker struct {
	mu       sync.RWMutex
	store    *store.Store
	accounts map[string]*models.Account
	records  map[string][]*models.TestRecord
	session  *models.Session
	nextID   int
	validate *validator.Validate
}

// NewTracker loads the snapshot, re-derives the global record-ID counter as
// max(existing IDs)+1 and restores the persisted session if its account
// still exists. The returned error is non-fatal: it reports a load fallback
// to seed data or a stale session that was discarded to disk unsuccessfully.
func NewTracker(st *store.Store) (*Tracker, error) {
	snap, loadErr := st.Load()

	t := &Tracker{
		store:    st,
		accounts: snap.Accounts,
		records:  snap.Records,
		session:  snap.Session,
		nextID:   1,
		validate: validator.New(),
	}

	maxID := 0
	for _, records := range t.records {
		for _, rec := range records {
			if rec.ID > maxID {
				maxID = rec.ID
			}
		}
	}
	t.nextID = maxID + 1

	// Stale sessions reference deleted accounts and are discarded.
	if t.session != nil {
		if _, ok := t.accounts[t.session.Handle]; !ok {
			t.session = nil
		}
	}

	if loadErr != nil {
		return t, loadErr
	}
	// Write the seed back on first run so the file exists from here on.
	return t, t.persistLocked()
}

// persistLocked writes the current state through to the store. Callers must
// hold at least a read lock.
func (t *Tracker) persistLocked() error {
	return t.store.Save(&store.Snapshot{
		Accounts: t.accounts,
		Records:  t.records,
		Session:  t.session,
	})
}

// CreateAccount registers a new account. The handle must be unused.
func (t *Tracker) CreateAccount(handle, secret, name, role string) (*models.Account, error) {
	if handle == "" {
		return nil, &ValidationError{Field: "Handle", Constraint: "required"}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.accounts[handle]; ok {
		return nil, ErrDuplicateHandle
	}

	acc := &models.Account{
		Handle:      handle,
		Secret:      secret,
		Role:        role,
		Name:        name,
		CreatedDate: time.Now().Format("2006-01-02"),
	}
	if err := t.validate.Struct(acc); err != nil {
		return nil, asValidationError(err)
	}

	t.accounts[handle] = acc
	if role == models.RoleStudent {
		t.records[handle] = []*models.TestRecord{}
	}
	return acc, t.persistLocked()
}

// DeleteAccount removes the account and cascades to all its test records.
func (t *Tracker) DeleteAccount(handle string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.accounts[handle]; !ok {
		return ErrAccountNotFound
	}
	delete(t.accounts, handle)
	delete(t.records, handle)
	return t.persistLocked()
}

// RenameAccount updates the display name; the handle never changes. The
// account value is replaced rather than written in place, so pointers handed
// out before the rename stay safe to read without the lock.
func (t *Tracker) RenameAccount(handle, newName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	acc, ok := t.accounts[handle]
	if !ok {
		return ErrAccountNotFound
	}
	renamed := *acc
	renamed.Name = newName
	t.accounts[handle] = &renamed
	return t.persistLocked()
}

// Account looks up a single account by handle.
func (t *Tracker) Account(handle string) (*models.Account, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	acc, ok := t.accounts[handle]
	return acc, ok
}

// Students lists student accounts with their test counts, sorted by handle.
func (t *Tracker) Students() []models.AccountSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.AccountSummary, 0, len(t.accounts))
	for _, handle := range t.sortedHandlesLocked() {
		acc := t.accounts[handle]
		if acc.Role != models.RoleStudent {
			continue
		}
		out = append(out, models.AccountSummary{
			Handle:      handle,
			Name:        acc.Name,
			CreatedDate: acc.CreatedDate,
			TestCount:   len(t.records[handle]),
		})
	}
	return out
}

// AddTestRecord validates the submission, assigns the next global ID and
// appends the record to the owner's list. Only student accounts own records.
func (t *Tracker) AddTestRecord(handle string, rec models.TestRecord) (*models.TestRecord, error) {
	if err := t.validate.StructExcept(&rec, "ID"); err != nil {
		return nil, asValidationError(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	acc, ok := t.accounts[handle]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if acc.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}

	rec.ID = t.nextID
	t.nextID++
	stored := &rec
	t.records[handle] = append(t.records[handle], stored)
	return stored, t.persistLocked()
}

// DeleteTestRecord removes the record with the given ID from the account's
// list. IDs are only unique per account, so the lookup never crosses lists.
func (t *Tracker) DeleteTestRecord(handle string, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	records := t.records[handle]
	for i, rec := range records {
		if rec.ID == id {
			t.records[handle] = append(records[:i], records[i+1:]...)
			return t.persistLocked()
		}
	}
	return ErrRecordNotFound
}

// ListRecords returns the account's records in insertion order. A missing
// account means "no data yet", not an error.
func (t *Tracker) ListRecords(handle string) []*models.TestRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := t.records[handle]
	out := make([]*models.TestRecord, len(records))
	copy(out, records)
	return out
}

// SearchRecords filters a student's records by a case-insensitive substring
// match on mock name, test date or total score.
func (t *Tracker) SearchRecords(handle, query string) []*models.TestRecord {
	records := t.ListRecords(handle)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	var out []*models.TestRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.MockName), query) ||
			strings.Contains(rec.TestDate, query) ||
			strings.Contains(strconv.FormatFloat(rec.TotalScore, 'f', -1, 64), query) {
			out = append(out, rec)
		}
	}
	return out
}

// AllRecordRows flattens every student's records with owner info attached,
// in sorted-handle order so admin views are deterministic. A non-empty
// studentFilter restricts the result to that student.
func (t *Tracker) AllRecordRows(studentFilter string) []models.AdminRecordRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []models.AdminRecordRow
	for _, handle := range t.sortedHandlesLocked() {
		if studentFilter != "" && handle != studentFilter {
			continue
		}
		acc := t.accounts[handle]
		for _, rec := range t.records[handle] {
			out = append(out, models.AdminRecordRow{
				StudentID:   handle,
				StudentName: acc.Name,
				TestRecord:  *rec,
			})
		}
	}
	return out
}

// SearchAllRecords filters the flattened admin rows by mock name, owner name
// or test date.
func (t *Tracker) SearchAllRecords(query, studentFilter string) []models.AdminRecordRow {
	rows := t.AllRecordRows(studentFilter)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	var out []models.AdminRecordRow
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.MockName), query) ||
			strings.Contains(strings.ToLower(row.StudentName), query) ||
			strings.Contains(row.TestDate, query) {
			out = append(out, row)
		}
	}
	return out
}

// AccountsSnapshot and RecordsSnapshot hand copies to the aggregation
// functions. Account values are copied so no later mutation can write into
// a snapshot a reader still holds; record structs are never modified after
// insertion, so sharing their pointers is safe.
func (t *Tracker) AccountsSnapshot() map[string]*models.Account {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]*models.Account, len(t.accounts))
	for handle, acc := range t.accounts {
		copied := *acc
		out[handle] = &copied
	}
	return out
}

func (t *Tracker) RecordsSnapshot() map[string][]*models.TestRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string][]*models.TestRecord, len(t.records))
	for handle, records := range t.records {
		list := make([]*models.TestRecord, len(records))
		copy(list, records)
		out[handle] = list
	}
	return out
}

func (t *Tracker) sortedHandlesLocked() []string {
	handles := make([]string, 0, len(t.accounts))
	for handle := range t.accounts {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}
