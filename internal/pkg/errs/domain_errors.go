package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Employee errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrCPFAlreadyExists   = errors.New("employee with this CPF already exists")
	ErrEmailAlreadyExists = errors.New("employee with this email already exists")

	// Department errors
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentNameTaken = errors.New("department name already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
