package repository

import (
	"errors"

	"employee-registry/internal/infra"
	"employee-registry/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Unique constraints arbitrate cross-process races that the usecase
// pre-checks cannot see. Violations map to the same conflict sentinels the
// pre-checks return.
var constraintSentinels = map[string]error{
	"employees_cpf_key":    errs.ErrCPFAlreadyExists,
	"employees_email_key":  errs.ErrEmailAlreadyExists,
	"departments_name_key": errs.ErrDepartmentNameTaken,
}

func translatePgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			wrapped := infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
			if sentinel, ok := constraintSentinels[pgErr.ConstraintName]; ok {
				return errs.Mark(wrapped, sentinel)
			}
			return wrapped
		case pgErrCodeForeignKeyViolation:
			// Fires both for an employee pointing at a missing department and
			// for deleting a department still in use; callers pre-check for
			// the friendlier message, so only the kind is kept here.
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
