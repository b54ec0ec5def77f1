package user

import (
	"context"
	"sync"
	"time"

	"metaspace/internal/auth"
)

// MemoryRepo is an in-memory Repository for tests and early development.
type MemoryRepo struct {
	mu sync.Mutex

	nextUserID   int
	nextAvatarID int

	users      map[string]*memUser // by username
	avatars    []Avatar
	LastLogins map[int]time.Time

	// FailTouchLastLogin makes TouchLastLogin fail, to exercise the
	// best-effort path in the sign-in flow.
	FailTouchLastLogin bool
}

type memUser struct {
	Credentials
	AvatarID *int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextUserID:   1,
		nextAvatarID: 1,
		users:        map[string]*memUser{},
		LastLogins:   map[int]time.Time{},
	}
}

func (r *MemoryRepo) GetCredentials(ctx context.Context, username string) (Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return Credentials{}, ErrNotFound
	}
	return u.Credentials, nil
}

func (r *MemoryRepo) CreateUser(ctx context.Context, username, passwordHash string, avatarID *int, role auth.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return ErrDuplicateUsername
	}
	r.users[username] = &memUser{
		Credentials: Credentials{
			ID:           r.nextUserID,
			Username:     username,
			PasswordHash: passwordHash,
			Role:         role,
		},
		AvatarID: avatarID,
	}
	r.nextUserID++
	return nil
}

func (r *MemoryRepo) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailTouchLastLogin {
		return context.DeadlineExceeded
	}
	r.LastLogins[userID] = at
	return nil
}

func (r *MemoryRepo) SetAvatar(ctx context.Context, userID, avatarID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			id := avatarID
			u.AvatarID = &id
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) AvatarsByUserIDs(ctx context.Context, userIDs []int) ([]UserAvatar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UserAvatar, 0, len(userIDs))
	for _, id := range userIDs {
		for _, u := range r.users {
			if u.ID == id {
				out = append(out, UserAvatar{UserID: id, AvatarID: u.AvatarID})
			}
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListAvatars(ctx context.Context) ([]Avatar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Avatar, len(r.avatars))
	copy(out, r.avatars)
	return out, nil
}

func (r *MemoryRepo) CreateAvatar(ctx context.Context, name, imageURL string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := Avatar{ID: r.nextAvatarID, Name: name, ImageURL: imageURL}
	r.nextAvatarID++
	r.avatars = append(r.avatars, a)
	return a.ID, nil
}
