package employer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/domain/employer"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/fixtures"
	"golang.org/x/crypto/bcrypt"
)

type EmployerServiceImpl struct {
	employerRepo employer.EmployerRepository
}

func NewEmployerService(employerRepo employer.EmployerRepository) employer.EmployerService {
	return &EmployerServiceImpl{employerRepo: employerRepo}
}

// Register implements employer.EmployerService. New accounts get the default
// attendance policy; employers tune it afterwards.
func (s *EmployerServiceImpl) Register(ctx context.Context, req employer.RegisterEmployerRequest) (employer.EmployerResponse, error) {
	if err := req.Validate(); err != nil {
		return employer.EmployerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employer.EmployerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.employerRepo.Create(ctx, employer.Employer{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		Contact:      req.Contact,
		Policy:       fixtures.DefaultPolicy(),
	})
	if err != nil {
		if errors.Is(err, employer.ErrEmailExists) {
			return employer.EmployerResponse{}, employer.ErrEmailExists
		}
		return employer.EmployerResponse{}, fmt.Errorf("failed to register employer: %w", err)
	}

	slog.Info("employer registered", "employer_id", created.ID)
	return mapToResponse(created), nil
}

// GetByID implements employer.EmployerService.
func (s *EmployerServiceImpl) GetByID(ctx context.Context, id string) (employer.EmployerResponse, error) {
	emp, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employer.ErrEmployerNotFound) {
			return employer.EmployerResponse{}, employer.ErrEmployerNotFound
		}
		return employer.EmployerResponse{}, fmt.Errorf("failed to get employer: %w", err)
	}
	return mapToResponse(emp), nil
}

func mapToResponse(e employer.Employer) employer.EmployerResponse {
	return employer.EmployerResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		CompanyName: e.CompanyName,
		Address:     e.Address,
		Contact:     e.Contact,
	}
}
