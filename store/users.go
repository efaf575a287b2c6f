// ABOUTME: In-memory user directory with credential verification
// ABOUTME: Registration holds the lock across the existence check and insert

package store

import (
	"sync"

	"github.com/markalston/bookshelf/models"
)

// UserDirectory holds registered credentials. Lookups are linear scans;
// the collection is small and never deleted from.
type UserDirectory struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserDirectory creates an empty user directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{}
}

// Exists reports whether username is registered.
func (d *UserDirectory) Exists(username string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.existsLocked(username)
}

// Verify reports whether the username/password pair matches a registered user.
func (d *UserDirectory) Verify(username, password string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// Register adds a new user. The existence check and insert happen under one
// lock so concurrent registrations of the same name cannot both succeed.
func (d *UserDirectory) Register(username, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.existsLocked(username) {
		return ErrDuplicateUser
	}
	d.users = append(d.users, models.User{Username: username, Password: password})
	return nil
}

// Count returns the number of registered users.
func (d *UserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// existsLocked scans for username. Callers must hold d.mu.
func (d *UserDirectory) existsLocked(username string) bool {
	for _, u := range d.users {
		if u.Username == username {
			return true
		}
	}
	return false
}
