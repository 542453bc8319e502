package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeInactive  = errors.New("employee is inactive")
	ErrNoEmployeeProfile = errors.New("no employee profile linked to this account")
)
