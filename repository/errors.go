package repository

import "errors"

var (
	// ErrDuplicateEmployee is returned when the unique index on employee_id
	// or email rejects an insert.
	ErrDuplicateEmployee = errors.New("employee with this employee_id or email already exists")

	// ErrDuplicatePunch is returned when the unique (employee_id, date)
	// index rejects a punch insert.
	ErrDuplicatePunch = errors.New("punch record for this employee and date already exists")
)
