package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("you have already punched in today")
	ErrNotPunchedIn      = errors.New("you have not punched in yet")
	ErrAlreadyPunchedOut = errors.New("you have already punched out")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
