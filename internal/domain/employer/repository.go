package employer

import "context"

type EmployerRepository interface {
	// Create inserts a new employer with its default policy.
	Create(ctx context.Context, employer Employer) (Employer, error)

	// GetByID retrieves an employer including its policy
	GetByID(ctx context.Context, id string) (Employer, error)

	// GetPolicyByEmployeeID resolves the policy of the employer owning the
	// given employee. Used by classification so one lookup serves a whole
	// period computation.
	GetPolicyByEmployeeID(ctx context.Context, employeeID string) (Policy, error)
}
