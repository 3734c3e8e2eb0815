package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// splitNumbers breaks a multi-number flag value apart. Both "2048x1024" and
// "0,0,90" styles are accepted.
func splitNumbers(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == 'X' || r == ',' || r == ' '
	})
}

// dimsValue is a flag.Value holding a <width>x<height> pair.
type dimsValue struct {
	w, h int
}

func (v *dimsValue) String() string {
	return fmt.Sprintf("%dx%d", v.w, v.h)
}

func (v *dimsValue) Set(s string) error {
	parts := splitNumbers(s)
	if len(parts) != 2 {
		return fmt.Errorf("expected <width>x<height>, got %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid height %q", parts[1])
	}
	v.w, v.h = w, h
	return nil
}

// tripleValue is a flag.Value holding three rotation angles in degrees.
type tripleValue struct {
	x, y, z float64
}

func (v *tripleValue) String() string {
	return fmt.Sprintf("%g,%g,%g", v.x, v.y, v.z)
}

func (v *tripleValue) Set(s string) error {
	parts := splitNumbers(s)
	if len(parts) != 3 {
		return fmt.Errorf("expected <rx>,<ry>,<rz>, got %q", s)
	}
	angles := make([]float64, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q", part)
		}
		angles[i] = f
	}
	v.x, v.y, v.z = angles[0], angles[1], angles[2]
	return nil
}
