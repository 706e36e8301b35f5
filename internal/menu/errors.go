package menu

import "errors"

var (
	ErrDuplicateID        = errors.New("duplicate menu item id")
	ErrEmptyID            = errors.New("menu item without id")
	ErrEmptyLabel         = errors.New("menu entry without label")
	ErrInvalidAccelerator = errors.New("invalid accelerator")
	ErrUnknownRole        = errors.New("unknown predefined role")
)
