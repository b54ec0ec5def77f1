package user

import (
	"context"
	"fmt"
	"time"

	"metaspace/internal/auth"
	"metaspace/pkg/logger"
)

// Service orchestrates credential storage, password hashing and token
// issuance for sign-in and sign-up, plus the small user-profile operations.
type Service struct {
	repo   Repository
	tokens *auth.Manager

	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{repo: repo, tokens: tokens, clock: time.Now}
}

// SignIn authenticates username/password and returns a signed token.
//
// Unknown username, store failure and wrong password all collapse into
// ErrInvalidCredentials so responses cannot be used for username enumeration.
// Detail stays in the logs.
func (s *Service) SignIn(ctx context.Context, username, password string) (string, error) {
	log := logger.From(ctx)

	creds, err := s.repo.GetCredentials(ctx, username)
	if err != nil {
		log.Error("credential lookup failed", "err", err)
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, creds.PasswordHash) {
		log.Error("password mismatch", "sub", creds.ID)
		return "", ErrInvalidCredentials
	}

	now := s.clock()
	token, err := s.tokens.Issue(now, creds.ID, creds.Role)
	if err != nil {
		return "", fmt.Errorf("token issuance: %w", err)
	}

	// Best effort: a failed last_login update must not fail the sign-in.
	if err := s.repo.TouchLastLogin(ctx, creds.ID, now); err != nil {
		log.Error("last_login update failed", "sub", creds.ID, "err", err)
	}

	log.Info("signed in", "sub", creds.ID)
	return token, nil
}

// SignUp hashes the password and creates the credential record.
// Duplicate usernames surface as ErrDuplicateUsername.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) error {
	if req.Username == "" || req.Password == "" {
		return ErrInvalidArgument
	}
	if req.Role == "" {
		req.Role = auth.RoleUser
	}
	if !req.Role.Valid() {
		return ErrInvalidArgument
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("password hash: %w", err)
	}

	if err := s.repo.CreateUser(ctx, req.Username, hash, req.AvatarID, req.Role); err != nil {
		return err
	}

	logger.From(ctx).Info("signed up", "username", req.Username)
	return nil
}

func (s *Service) SetAvatar(ctx context.Context, userID, avatarID int) error {
	return s.repo.SetAvatar(ctx, userID, avatarID)
}

func (s *Service) AvatarsByUserIDs(ctx context.Context, userIDs []int) ([]UserAvatar, error) {
	return s.repo.AvatarsByUserIDs(ctx, userIDs)
}

func (s *Service) ListAvatars(ctx context.Context) ([]Avatar, error) {
	return s.repo.ListAvatars(ctx)
}

func (s *Service) CreateAvatar(ctx context.Context, name, imageURL string) (int, error) {
	if name == "" || imageURL == "" {
		return 0, ErrInvalidArgument
	}
	return s.repo.CreateAvatar(ctx, name, imageURL)
}
