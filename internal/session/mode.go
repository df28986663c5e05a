package session

import (
	"fmt"
	"strings"
)

// Mode selects which panels are shown and what the primary action does.
type Mode string

const (
	ModeSolve     Mode = "solve"
	ModeGenerate  Mode = "generate"
	ModeWorkbench Mode = "workbench"
)

// AllModes returns the modes in tab order.
func AllModes() []Mode {
	return []Mode{ModeSolve, ModeGenerate, ModeWorkbench}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSolve, ModeGenerate, ModeWorkbench:
		return true
	}
	return false
}

// Next returns the mode after m in tab order.
func (m Mode) Next() Mode {
	all := AllModes()
	for i, x := range all {
		if x == m {
			return all[(i+1)%len(all)]
		}
	}
	return ModeSolve
}

// ParseMode accepts a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}

// Op is a gateway call started from the UI.
type Op int

const (
	OpSynthesize Op = iota
	OpGenerate
	OpVerify
)

func (o Op) String() string {
	switch o {
	case OpSynthesize:
		return "synthesize"
	case OpGenerate:
		return "generate"
	case OpVerify:
		return "verify"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Mode returns the mode in which o is the primary action.
func (o Op) Mode() Mode {
	switch o {
	case OpGenerate:
		return ModeGenerate
	case OpVerify:
		return ModeWorkbench
	}
	return ModeSolve
}
