package employee

import "context"

type EmployeeRepository interface {
	// FindByFingerprint resolves a clock event to an employee: enrolled,
	// active, bound to the device, and owning the fingerprint template.
	// Returns ErrEmployeeNotFound when nothing matches.
	FindByFingerprint(ctx context.Context, deviceID string, fingerID int) (Employee, error)

	// GetByID retrieves an employee with their fingerprint set
	GetByID(ctx context.Context, id string) (Employee, error)
}
