package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAction      = errors.New("missing action")
	ErrDuplicateUser      = errors.New("duplicate user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLockTimeout        = errors.New("timed out waiting for write lock")
	ErrMissingItemID      = errors.New("item is missing an id")
)

func missingField(name string) error {
	return fmt.Errorf("missing field: %s", name)
}

func unknownAction(action string) error {
	return fmt.Errorf("unknown action: %s", action)
}

func unknownTable(table string) error {
	return fmt.Errorf("unknown table: %s", table)
}
