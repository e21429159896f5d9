package domain

import "cat-tracker/app/models"

// Login establishes the current session. Handle existence is checked before
// the secret so the two failures stay distinguishable, and the secret is an
// exact case-sensitive comparison by design.
func (t *Tracker) Login(handle, secret string) (*models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	acc, ok := t.accounts[handle]
	if !ok {
		return nil, ErrUnknownHandle
	}
	if acc.Secret != secret {
		return nil, ErrWrongSecret
	}

	t.session = &models.Session{
		Handle: handle,
		Name:   acc.Name,
		Role:   acc.Role,
	}
	return t.session, t.persistLocked()
}

// Logout clears the session unconditionally.
func (t *Tracker) Logout() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.session = nil
	return t.persistLocked()
}

// CurrentSession returns the restored or active session, nil when anonymous.
func (t *Tracker) CurrentSession() *models.Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.session
}
