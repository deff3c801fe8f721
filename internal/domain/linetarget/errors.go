package linetarget

import "errors"

var (
	ErrLineTargetNotFound       = errors.New("Line target not found")
	ErrLineTargetDetailNotFound = errors.New("Line target detail not found")
	ErrLineTargetExists         = errors.New("Line target already exists for this line, date and shift")
)
