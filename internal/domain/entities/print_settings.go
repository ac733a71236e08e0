package entities

import (
	"errors"
	"fmt"
)

// Print setting dimensions are closed enums. Unknown values are rejected at
// validation time instead of silently falling back to a default rate.

var ErrInvalidPrintSettings = errors.New("invalid print settings")

type PaperType string

const (
	PaperTypeStandard PaperType = "standard"
	PaperTypePremium  PaperType = "premium"
	PaperTypeGlossy   PaperType = "glossy"
)

func (p PaperType) Valid() bool {
	switch p {
	case PaperTypeStandard, PaperTypePremium, PaperTypeGlossy:
		return true
	}
	return false
}

type ColorMode string

const (
	ColorModeBlackAndWhite ColorMode = "black_and_white"
	ColorModeColor         ColorMode = "color"
)

func (c ColorMode) Valid() bool {
	switch c {
	case ColorModeBlackAndWhite, ColorModeColor:
		return true
	}
	return false
}

type PrintSides string

const (
	SidesSingle PrintSides = "single"
	SidesDouble PrintSides = "double"
)

func (s PrintSides) Valid() bool {
	switch s {
	case SidesSingle, SidesDouble:
		return true
	}
	return false
}

type Binding string

const (
	BindingNone   Binding = "none"
	BindingSpiral Binding = "spiral"
	BindingStaple Binding = "staple"
)

func (b Binding) Valid() bool {
	switch b {
	case BindingNone, BindingSpiral, BindingStaple:
		return true
	}
	return false
}

// PrintSettings is a value object attached to an order at creation time.
// It is never mutated afterwards.
type PrintSettings struct {
	PaperType PaperType  `json:"paper_type"`
	ColorMode ColorMode  `json:"color_mode"`
	Sides     PrintSides `json:"sides"`
	Binding   Binding    `json:"binding"`
	Copies    int        `json:"copies"`
}

func (s PrintSettings) Validate() error {
	if !s.PaperType.Valid() {
		return fmt.Errorf("%w: unknown paper type %q", ErrInvalidPrintSettings, s.PaperType)
	}
	if !s.ColorMode.Valid() {
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidPrintSettings, s.ColorMode)
	}
	if !s.Sides.Valid() {
		return fmt.Errorf("%w: unknown sides value %q", ErrInvalidPrintSettings, s.Sides)
	}
	if !s.Binding.Valid() {
		return fmt.Errorf("%w: unknown binding %q", ErrInvalidPrintSettings, s.Binding)
	}
	if s.Copies < 1 {
		return fmt.Errorf("%w: copies must be at least 1, got %d", ErrInvalidPrintSettings, s.Copies)
	}
	return nil
}
