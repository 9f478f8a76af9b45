package employer

import (
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/validator"
)

type RegisterEmployerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
}

func (r RegisterEmployerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "companyName", Message: "is required"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "is required"})
	}
	if validator.IsEmpty(r.Contact) {
		errs = append(errs, validator.ValidationError{Field: "contact", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
}
