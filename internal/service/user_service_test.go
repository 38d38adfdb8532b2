package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
)

type fakeUserRepo struct {
	users     map[string]dom.User
	getErr    error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	if f.getErr != nil {
		return dom.User{}, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return dom.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	if f.createErr != nil {
		return dom.User{}, f.createErr
	}
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = u
	return u, nil
}

func newTestUserService(r *fakeUserRepo) *UserService {
	return NewUserService(r, NewBcryptHasher(bcrypt.MinCost))
}

func TestUserService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), "a", "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	assert.False(t, u.ID.IsZero())

	// Stored digest is never the plaintext but verifies against it.
	stored := repo.users["a@x.com"]
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw")))
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "a", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "b", "a@x.com", "other")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestUserService_RegisterBlankInput(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a", "  ", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a", "a@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_RegisterRepoError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("store unreachable")
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "a", "a@x.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_ValidateCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Register(context.Background(), "a", "a@x.com", "pw")
	require.NoError(t, err)

	u, err := svc.ValidateCredentials(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "a", u.Username)
}

func TestUserService_ValidateCredentialsIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "a", "a@x.com", "pw")
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same error.
	_, errWrongPw := svc.ValidateCredentials(context.Background(), "a@x.com", "wrong")
	_, errUnknown := svc.ValidateCredentials(context.Background(), "b@x.com", "pw")
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw, errUnknown)
}

func TestUserService_ValidateCredentialsRepoError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("store unreachable")
	svc := newTestUserService(repo)

	_, err := svc.ValidateCredentials(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
