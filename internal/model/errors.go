package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrPanelTooLarge    = errors.New("panel too large for jumbo sheet")
)

// PanelError reports a validation failure on a single panel.
// It unwraps to one of the sentinel errors above.
type PanelError struct {
	PanelID string
	Field   string
	Err     error
}

func (e *PanelError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("panel %s: %v", e.PanelID, e.Err)
	}
	return fmt.Sprintf("panel %s: %s: %v", e.PanelID, e.Field, e.Err)
}

func (e *PanelError) Unwrap() error {
	return e.Err
}

func panelErr(id, field string, err error) error {
	return &PanelError{PanelID: id, Field: field, Err: err}
}
