package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"tradeledger/internal/apperror"
	"tradeledger/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository. Create holds a mutex
// around the uniqueness check and the write, matching the atomicity a
// unique index gives the real repository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return apperror.NewConflict("username already exists")
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user not found")
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Generate(userID uuid.UUID) (string, error) {
	return "token-for-" + userID.String(), nil
}

func newTestService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	// MinCost keeps the hashing fast in tests; the cost is config-driven
	// in production.
	return NewAuthService(repo, fakeTokenIssuer{}, 4), repo
}

func TestSignup_Success(t *testing.T) {
	svc, repo := newTestService()

	user, err := svc.Signup(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret" {
		t.Error("expected a non-empty hash that is not the plaintext password")
	}

	stored, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected user to be persisted: %v", err)
	}
	if stored.PasswordHash == "s3cret" {
		t.Error("plaintext password must never be persisted")
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Signup(context.Background(), "bob", "first"); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.Signup(context.Background(), "bob", "second")
	if !apperror.IsConflict(err) {
		t.Fatalf("expected a Conflict error for duplicate signup, got %v", err)
	}
}

func TestSignup_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Signup(context.Background(), "", "pw"); !apperror.IsValidation(err) {
		t.Errorf("expected Validation error for empty username, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "carol", ""); !apperror.IsValidation(err) {
		t.Errorf("expected Validation error for empty password, got %v", err)
	}
}

func TestSignup_ConcurrentSameUsername(t *testing.T) {
	svc, _ := newTestService()

	const attempts = 10
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Signup(context.Background(), "racer", "pw123")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case apperror.IsConflict(err):
			conflicts++
		default:
			t.Errorf("unexpected error kind: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 successful signup, got %d", successes)
	}
	if conflicts != attempts-1 {
		t.Errorf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Signup(context.Background(), "dave", "hunter2")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	result, err := svc.Login(context.Background(), "dave", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.User.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, result.User.ID)
	}
}

func TestLogin_FailurePathsIndistinguishable(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Signup(context.Background(), "erin", "rightpw"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, wrongPw := svc.Login(context.Background(), "erin", "wrongpw")
	_, noUser := svc.Login(context.Background(), "nobody", "whatever")

	if !apperror.IsAuth(wrongPw) {
		t.Fatalf("expected Auth error for wrong password, got %v", wrongPw)
	}
	if !apperror.IsAuth(noUser) {
		t.Fatalf("expected Auth error for unknown user, got %v", noUser)
	}

	// Same kind and same message: a caller cannot tell the paths apart.
	if wrongPw.Error() != noUser.Error() {
		t.Errorf("failure paths differ: %q vs %q", wrongPw.Error(), noUser.Error())
	}
}
