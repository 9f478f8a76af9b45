package employer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployerRepo struct {
	created  []employer.Employer
	existing map[string]bool // emails already taken
}

func (f *fakeEmployerRepo) Create(_ context.Context, e employer.Employer) (employer.Employer, error) {
	if f.existing[e.Email] {
		return employer.Employer{}, employer.ErrEmailExists
	}
	e.ID = "employer-1"
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeEmployerRepo) GetByID(_ context.Context, id string) (employer.Employer, error) {
	for _, e := range f.created {
		if e.ID == id {
			return e, nil
		}
	}
	return employer.Employer{}, employer.ErrEmployerNotFound
}

func (f *fakeEmployerRepo) GetPolicyByEmployeeID(_ context.Context, _ string) (employer.Policy, error) {
	return employer.Policy{}, employer.ErrEmployerNotFound
}

func registerRequest() employer.RegisterEmployerRequest {
	return employer.RegisterEmployerRequest{
		Name:        "Juan dela Cruz",
		Email:       "Juan@Example.com",
		Password:    "correct-horse",
		CompanyName: "JDC Trading",
		Address:     "Quezon City",
		Contact:     "0917-000-0000",
	}
}

func TestRegister(t *testing.T) {
	repo := &fakeEmployerRepo{}
	svc := NewEmployerService(repo)

	result, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "employer-1", result.ID)
	assert.Equal(t, "juan@example.com", result.Email)

	require.Len(t, repo.created, 1)
	created := repo.created[0]

	// Stored hash verifies against the plaintext and is not the plaintext.
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))

	// New accounts start with the default policy seeded.
	assert.Equal(t, "08:00", created.Policy.WorkStartTime)
	assert.Equal(t, 6, created.Policy.RestDay)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeEmployerRepo{existing: map[string]bool{"juan@example.com": true}}
	svc := NewEmployerService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, employer.ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewEmployerService(&fakeEmployerRepo{})

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	repo := &fakeEmployerRepo{}
	svc := NewEmployerService(repo)

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employer.ErrEmployerNotFound)
}
