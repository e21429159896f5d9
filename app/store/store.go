package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cat-tracker/app/models"
)

// ErrUnavailable wraps any failure to read or write the data file. Callers
// keep their in-memory state on write failure; the error tells the acting
// user that state is at risk of loss on restart.
var ErrUnavailable = errors.New("data file unavailable")

// Snapshot is the full persisted state: the three logical collections the
// tracker owns. Session is nil when nobody is logged in.
type Snapshot struct {
	Accounts map[string]*models.Account
	Records  map[string][]*models.TestRecord
	Session  *models.Session
}

// fileLayout mirrors the original localStorage keys in a single JSON file.
type fileLayout struct {
	Users       map[string]accountJSON          `json:"users"`
	MockTests   map[string][]*models.TestRecord `json:"mockTests"`
	CurrentUser *models.Session                 `json:"currentUser,omitempty"`
}

type accountJSON struct {
	Password    string `json:"password"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	CreatedDate string `json:"createdDate"`
}

// Store reads and writes the whole snapshot to one local JSON file. Every
// mutation rewrites the file; there is no batching or partial-write recovery.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the data file. A missing file is first run: the seed snapshot
// is returned with no error. An unreadable or corrupt file also falls back
// to the seed snapshot, but the failure is returned so the caller can warn
// that stored data was ignored.
func (s *Store) Load() (*Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return SeedSnapshot(), nil
		}
		return SeedSnapshot(), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var layout fileLayout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return SeedSnapshot(), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	snap := &Snapshot{
		Accounts: make(map[string]*models.Account, len(layout.Users)),
		Records:  make(map[string][]*models.TestRecord, len(layout.MockTests)),
		Session:  layout.CurrentUser,
	}
	for handle, acc := range layout.Users {
		snap.Accounts[handle] = &models.Account{
			Handle:      handle,
			Secret:      acc.Password,
			Role:        acc.Role,
			Name:        acc.Name,
			CreatedDate: acc.CreatedDate,
		}
	}
	for handle, records := range layout.MockTests {
		snap.Records[handle] = records
	}
	return snap, nil
}

// Save rewrites the data file from the snapshot.
func (s *Store) Save(snap *Snapshot) error {
	layout := fileLayout{
		Users:       make(map[string]accountJSON, len(snap.Accounts)),
		MockTests:   snap.Records,
		CurrentUser: snap.Session,
	}
	for handle, acc := range snap.Accounts {
		layout.Users[handle] = accountJSON{
			Password:    acc.Secret,
			Role:        acc.Role,
			Name:        acc.Name,
			CreatedDate: acc.CreatedDate,
		}
	}

	raw, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
