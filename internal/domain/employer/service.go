package employer

import "context"

type EmployerService interface {
	// Register creates an employer account with a hashed password and the
	// default attendance policy
	Register(ctx context.Context, req RegisterEmployerRequest) (EmployerResponse, error)

	// GetByID retrieves an employer profile
	GetByID(ctx context.Context, id string) (EmployerResponse, error)
}
