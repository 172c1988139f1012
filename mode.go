package pfc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names other than compress
// and expand.
var ErrUnknownMode = errors.New("pfc: unknown mode")

// Mode selects the direction of a run.
type Mode int

const (
	// ModeCompress front-codes a sorted word list.
	ModeCompress Mode = iota
	// ModeExpand restores a word list from its records.
	ModeExpand
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeExpand:
		return "expand"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "compress" or "expand".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "compress":
		return ModeCompress, nil
	case "expand":
		return ModeExpand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
