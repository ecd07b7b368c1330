package action

import "errors"

const logPrefix = "internal.action"

var (
	ErrEmptyName       = errors.New("action name is empty")
	ErrDuplicateAction = errors.New("action already registered")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidArgs     = errors.New("invalid action arguments")
)
