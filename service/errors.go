package service

import "errors"

var (
	// ErrAlreadyPunchedIn is returned when an employee punches in while an
	// open record for today already exists, or when the unique index rejects
	// a concurrent duplicate insert.
	ErrAlreadyPunchedIn = errors.New("already punched in today")

	// ErrNoOpenPunch is returned when an employee punches out with no open
	// record for today.
	ErrNoOpenPunch = errors.New("no punch in record found for today")

	// ErrPunchOutBeforePunchIn is returned when the punch-out timestamp
	// precedes the punch-in timestamp.
	ErrPunchOutBeforePunchIn = errors.New("punch out time is before punch in time")

	// ErrUnknownReportType is returned for report types outside the closed
	// attendance/salary/employee enumeration.
	ErrUnknownReportType = errors.New("unknown report type")
)
