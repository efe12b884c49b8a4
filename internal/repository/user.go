package repository

import (
	"errors"
	"strings"
	"sync"

	"github.com/deppfellow/user-api/internal/model"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when another user already holds the
	// email, compared case-insensitively.
	ErrDuplicateEmail = errors.New("user with this email already exists")
)

// UserRepository stores users in insertion order together with the
// next id to hand out.
//
// Invariants, held under mu:
//   - ids are unique and strictly below nextID
//   - no two users share an email under case-insensitive comparison
//   - ids are never reused, even after a delete
type UserRepository struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int
}

// NewUserRepository returns an empty store whose first id is 1.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make([]model.User, 0),
		nextID: 1,
	}
}

// List returns a copy of every user in insertion order.
func (r *UserRepository) List() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(id int) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}
	return r.users[i], nil
}

// Create appends a new user with the next id.
func (r *UserRepository) Create(input model.UserInput) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(input.Email, 0) {
		return model.User{}, ErrDuplicateEmail
	}

	user := model.User{
		ID:    r.nextID,
		Name:  input.Name,
		Email: input.Email,
	}
	r.nextID++
	r.users = append(r.users, user)

	return user, nil
}

// Update replaces the name and email of the user with the given id,
// keeping its id and position. A user may keep its own email.
func (r *UserRepository) Update(id int, input model.UserInput) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}

	if r.emailTaken(input.Email, id) {
		return model.User{}, ErrDuplicateEmail
	}

	r.users[i] = model.User{
		ID:    r.users[i].ID,
		Name:  input.Name,
		Email: input.Email,
	}

	return r.users[i], nil
}

// Delete removes the user with the given id and returns it.
func (r *UserRepository) Delete(id int) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.User{}, ErrUserNotFound
	}

	removed := r.users[i]
	r.users = append(r.users[:i], r.users[i+1:]...)

	return removed, nil
}

// indexOf returns the position of id, or -1. Callers hold mu.
func (r *UserRepository) indexOf(id int) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether a user other than exceptID holds email.
// Ids start at 1, so exceptID 0 excludes nobody. Callers hold mu.
func (r *UserRepository) emailTaken(email string, exceptID int) bool {
	for _, u := range r.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
