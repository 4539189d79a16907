package phyloxml

import (
	"fmt"
	"strconv"
)

// BranchColor is the color of a clade when rendered graphically. It applies
// to the whole clade unless overridden by a sub-clade.
type BranchColor struct {
	Red, Green, Blue uint8
}

// NewBranchColor returns a color from integer channel values, which must be
// in the range 0-255.
func NewBranchColor(red, green, blue int) (*BranchColor, error) {
	for _, v := range []int{red, green, blue} {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: (%d, %d, %d)",
				ErrColorRange, red, green, blue)
		}
	}
	return &BranchColor{uint8(red), uint8(green), uint8(blue)}, nil
}

// ParseRGB is the inverse of ToRGB. A leading '#' is allowed.
func ParseRGB(s string) (*BranchColor, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("phyloxml: '%s' is not a 6 digit hex color", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("phyloxml: invalid hex color: %s", err)
	}
	return &BranchColor{uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// ToRGB returns the 24-bit hexadecimal RGB representation of the color, which
// is suitable for use in HTML/CSS. e.g., (12, 200, 100) is '0cc864'.
func (bc *BranchColor) ToRGB() string {
	return fmt.Sprintf("%06x",
		int(bc.Red)<<16|int(bc.Green)<<8|int(bc.Blue))
}

func (bc *BranchColor) String() string {
	return fmt.Sprintf("BranchColor (%d, %d, %d)", bc.Red, bc.Green, bc.Blue)
}
