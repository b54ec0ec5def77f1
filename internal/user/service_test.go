package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"metaspace/internal/auth"
	"metaspace/internal/config"
)

func testService(t *testing.T) (*Service, *MemoryRepo, *auth.Manager) {
	t.Helper()
	m, err := auth.NewManager(config.AuthConfig{Secret: "secret", TokenTTL: 24 * time.Hour})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	repo := NewMemoryRepo()
	return NewService(repo, m), repo, m
}

func TestSignUpThenSignIn(t *testing.T) {
	svc, repo, m := testService(t)
	ctx := context.Background()

	if err := svc.SignUp(ctx, SignUpRequest{Username: "alice", Password: "pw1", Role: auth.RoleUser}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, err := svc.SignIn(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}

	claims, err := m.Verify(token, time.Now())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	creds, err := repo.GetCredentials(ctx, "alice")
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	id, err := claims.Identity()
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if id.UserID != creds.ID || id.Role != auth.RoleUser {
		t.Fatalf("token identity %+v does not match stored record %+v", id, creds)
	}
	if _, ok := repo.LastLogins[creds.ID]; !ok {
		t.Fatalf("expected last_login touch")
	}
}

func TestSignUpDuplicateUsername(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if err := svc.SignUp(ctx, SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	err := svc.SignUp(ctx, SignUpRequest{Username: "alice", Password: "pw2"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSignInEnumerationResistance(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if err := svc.SignUp(ctx, SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, errUnknown := svc.SignIn(ctx, "nobody", "pw1")
	_, errWrongPw := svc.SignIn(ctx, "alice", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("rejections must be indistinguishable: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestSignInLastLoginBestEffort(t *testing.T) {
	svc, repo, _ := testService(t)
	ctx := context.Background()

	if err := svc.SignUp(ctx, SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	repo.FailTouchLastLogin = true

	if _, err := svc.SignIn(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("signin must not fail when last_login update fails: %v", err)
	}
}

func TestSignUpRejectsUnknownRole(t *testing.T) {
	svc, _, _ := testService(t)

	err := svc.SignUp(context.Background(), SignUpRequest{Username: "bob", Password: "pw", Role: auth.Role("owner")})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
