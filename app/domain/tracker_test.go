package domain

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"cat-tracker/app/models"
	"cat-tracker/app/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededTracker starts from the first-run seed data (4 accounts, 4 records,
// max record ID 2).
func seededTracker(t *testing.T) *Tracker {
	t.Helper()
	tracker, err := NewTracker(store.New(filepath.Join(t.TempDir(), "data.json")))
	require.NoError(t, err)
	return tracker
}

// emptyTracker starts from a valid but empty data file.
func emptyTracker(t *testing.T) *Tracker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":{},"mockTests":{}}`), 0644))
	tracker, err := NewTracker(store.New(path))
	require.NoError(t, err)
	return tracker
}

func validRecord(name, date string) models.TestRecord {
	return models.TestRecord{
		MockName:          name,
		TotalScore:        80,
		OverallPercentile: 90,
		NegativeMarks:     10,
		Accuracy:          75,
		VARCMarks:         28,
		VARCPercentile:    91,
		LRDIMarks:         25,
		LRDIPercentile:    88,
		QAMarks:           27,
		QAPercentile:      92,
		TestDate:          date,
	}
}

func TestAddTestRecord_GlobalIDsMonotonic(t *testing.T) {
	tracker := emptyTracker(t)
	_, err := tracker.CreateAccount("a1", "pw", "Student One", models.RoleStudent)
	require.NoError(t, err)
	_, err = tracker.CreateAccount("a2", "pw", "Student Two", models.RoleStudent)
	require.NoError(t, err)

	// IDs increase in call order across accounts.
	owners := []string{"a1", "a2", "a1", "a2"}
	for i, owner := range owners {
		rec, err := tracker.AddTestRecord(owner, validRecord("Mock", "2025-08-20"))
		require.NoError(t, err)
		assert.Equal(t, i+1, rec.ID)
	}

	// Deletion never frees an ID for reuse.
	require.NoError(t, tracker.DeleteTestRecord("a2", 4))
	rec, err := tracker.AddTestRecord("a1", validRecord("Mock", "2025-08-21"))
	require.NoError(t, err)
	assert.Equal(t, 5, rec.ID)
}

func TestNewTracker_CounterDerivedFromMaxID(t *testing.T) {
	tracker := seededTracker(t)

	// Seed max ID is 2, so the first new record gets 3.
	rec, err := tracker.AddTestRecord("student2", validRecord("Mock", "2025-08-25"))
	require.NoError(t, err)
	assert.Equal(t, 3, rec.ID)
}

func TestDeleteAccount_CascadesToRecords(t *testing.T) {
	tracker := seededTracker(t)

	require.NoError(t, tracker.DeleteAccount("student1"))

	assert.Empty(t, tracker.ListRecords("student1"))
	for _, row := range tracker.AllRecordRows("") {
		assert.NotEqual(t, "student1", row.StudentID)
	}

	assert.ErrorIs(t, tracker.DeleteAccount("student1"), ErrAccountNotFound)
}

func TestCreateAccount_DuplicateHandle(t *testing.T) {
	tracker := seededTracker(t)

	_, err := tracker.CreateAccount("student1", "pw", "Copy", models.RoleStudent)
	assert.ErrorIs(t, err, ErrDuplicateHandle)
}

func TestRenameAccount(t *testing.T) {
	tracker := seededTracker(t)

	require.NoError(t, tracker.RenameAccount("student1", "Rahul S."))
	acc, ok := tracker.Account("student1")
	require.True(t, ok)
	assert.Equal(t, "Rahul S.", acc.Name)

	assert.ErrorIs(t, tracker.RenameAccount("ghost", "Nobody"), ErrAccountNotFound)
}

func TestAccountsSnapshot_IsolatedFromRename(t *testing.T) {
	tracker := seededTracker(t)

	snap := tracker.AccountsSnapshot()
	require.NoError(t, tracker.RenameAccount("student1", "Renamed"))

	// The snapshot keeps the value it was taken with.
	assert.Equal(t, "Rahul Sharma", snap["student1"].Name)
	acc, ok := tracker.Account("student1")
	require.True(t, ok)
	assert.Equal(t, "Renamed", acc.Name)
}

func TestRenameAccount_ConcurrentWithSnapshotReads(t *testing.T) {
	tracker := seededTracker(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = tracker.RenameAccount("student1", "Name "+strconv.Itoa(i))
		}
	}()
	for i := 0; i < 200; i++ {
		snap := tracker.AccountsSnapshot()
		assert.NotEmpty(t, snap["student1"].Name)
	}
	<-done
}

func TestListRecords_MissingAccountIsEmptyNotError(t *testing.T) {
	tracker := seededTracker(t)
	assert.Empty(t, tracker.ListRecords("ghost"))
}

func TestDeleteTestRecord_ScopedToAccount(t *testing.T) {
	tracker := seededTracker(t)

	// student2 owns record 1 too; deleting it must not touch student1's.
	require.NoError(t, tracker.DeleteTestRecord("student2", 1))
	assert.Empty(t, tracker.ListRecords("student2"))
	assert.Len(t, tracker.ListRecords("student1"), 2)

	assert.ErrorIs(t, tracker.DeleteTestRecord("student2", 1), ErrRecordNotFound)
}

func TestAddTestRecord_Validation(t *testing.T) {
	tracker := seededTracker(t)

	tests := []struct {
		name       string
		mutate     func(*models.TestRecord)
		field      string
		constraint string
	}{
		{
			name:       "missing mock name",
			mutate:     func(r *models.TestRecord) { r.MockName = "" },
			field:      "MockName",
			constraint: "required",
		},
		{
			name:       "percentile above range",
			mutate:     func(r *models.TestRecord) { r.OverallPercentile = 100.5 },
			field:      "OverallPercentile",
			constraint: "max",
		},
		{
			name:       "negative marks below range",
			mutate:     func(r *models.TestRecord) { r.NegativeMarks = -1 },
			field:      "NegativeMarks",
			constraint: "min",
		},
		{
			name:       "bad date format",
			mutate:     func(r *models.TestRecord) { r.TestDate = "20/08/2025" },
			field:      "TestDate",
			constraint: "datetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord("Mock", "2025-08-20")
			tt.mutate(&rec)

			_, err := tracker.AddTestRecord("student1", rec)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.constraint, verr.Constraint)
		})
	}
}

func TestAddTestRecord_UnknownAccount(t *testing.T) {
	tracker := seededTracker(t)
	_, err := tracker.AddTestRecord("ghost", validRecord("Mock", "2025-08-20"))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAddTestRecord_AdminCannotOwnRecords(t *testing.T) {
	tracker := seededTracker(t)

	_, err := tracker.AddTestRecord("admin", validRecord("Mock", "2025-08-20"))
	assert.ErrorIs(t, err, ErrNotStudent)
	assert.Empty(t, tracker.ListRecords("admin"))
}

func TestLogin_UnknownHandleBeforeWrongSecret(t *testing.T) {
	tracker := seededTracker(t)

	// An unknown handle must never report a wrong secret, whatever the
	// secret is.
	_, err := tracker.Login("nonexistent", "admin123")
	assert.ErrorIs(t, err, ErrUnknownHandle)

	_, err = tracker.Login("student1", "wrong")
	assert.ErrorIs(t, err, ErrWrongSecret)

	// Exact, case-sensitive comparison.
	_, err = tracker.Login("student1", "PASS123")
	assert.ErrorIs(t, err, ErrWrongSecret)

	session, err := tracker.Login("student1", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "student1", session.Handle)
	assert.Equal(t, "Rahul Sharma", session.Name)
	assert.Equal(t, models.RoleStudent, session.Role)
}

func TestLogout_ClearsSession(t *testing.T) {
	tracker := seededTracker(t)

	_, err := tracker.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, tracker.CurrentSession())

	require.NoError(t, tracker.Logout())
	assert.Nil(t, tracker.CurrentSession())
}

func TestSessionRestore_AcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	first, err := NewTracker(store.New(path))
	require.NoError(t, err)
	_, err = first.Login("student2", "pass456")
	require.NoError(t, err)

	// Same data file: the session comes back without a secret re-check.
	second, err := NewTracker(store.New(path))
	require.NoError(t, err)
	session := second.CurrentSession()
	require.NotNil(t, session)
	assert.Equal(t, "student2", session.Handle)

	// Delete the account and restart again: the stale session is discarded.
	require.NoError(t, second.DeleteAccount("student2"))
	third, err := NewTracker(store.New(path))
	require.NoError(t, err)
	assert.Nil(t, third.CurrentSession())
}

func TestSearchRecords(t *testing.T) {
	tracker := seededTracker(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by mock name", "time", 1},
		{"by date", "2025-08-20", 1},
		{"by score", "89", 1},
		{"no match", "zzz", 0},
		{"blank returns all", "  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tracker.SearchRecords("student1", tt.query), tt.want)
		})
	}
}

func TestSearchAllRecords_ByOwnerName(t *testing.T) {
	tracker := seededTracker(t)

	rows := tracker.SearchAllRecords("priya", "")
	require.Len(t, rows, 1)
	assert.Equal(t, "student2", rows[0].StudentID)

	rows = tracker.SearchAllRecords("", "student3")
	require.Len(t, rows, 1)
	assert.Equal(t, "Unacademy Mock 1", rows[0].MockName)
}
