package reveal

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// BorderStyle selects which edges of a target receive the border highlight.
type BorderStyle int

const (
	// BorderFull draws the border on all four edges.
	BorderFull BorderStyle = iota
	// BorderHalf draws the border on the top and bottom edges only.
	BorderHalf
	// BorderNone disables the border layer.
	BorderNone
)

func (b BorderStyle) String() string {
	switch b {
	case BorderFull:
		return "full"
	case BorderHalf:
		return "half"
	case BorderNone:
		return "none"
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle converts "full", "half" or "none".
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return BorderFull, nil
	case "half":
		return BorderHalf, nil
	case "none":
		return BorderNone, nil
	}
	return BorderFull, fmt.Errorf("unknown border style %q", s)
}

// FillMode governs how the fill radius relates to the target size.
type FillMode int

const (
	// FillRelative multiplies the fill radius by the target's dimensions.
	FillRelative FillMode = iota
	// FillAbsolute uses the fill radius in pixels.
	FillAbsolute
	// FillNone disables the fill layer.
	FillNone
)

func (f FillMode) String() string {
	switch f {
	case FillRelative:
		return "relative"
	case FillAbsolute:
		return "absolute"
	case FillNone:
		return "none"
	}
	return fmt.Sprintf("FillMode(%d)", int(f))
}

// ParseFillMode converts "relative", "absolute" or "none".
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relative":
		return FillRelative, nil
	case "absolute":
		return FillAbsolute, nil
	case "none":
		return FillNone, nil
	}
	return FillRelative, fmt.Errorf("unknown fill mode %q", s)
}

// Style is the fully resolved configuration of one reveal target.
type Style struct {
	// Color is the highlight color. Alpha is ignored; layer alphas are fixed.
	Color       color.RGBA
	BorderStyle BorderStyle
	BorderWidth float64
	FillMode    FillMode
	FillRadius  float64
	// BorderWhileNotHover keeps the border layer visible while the pointer
	// is inside the boundary but outside this target.
	BorderWhileNotHover bool
	// AnimateSpeed is the ripple duration in frame units before release.
	AnimateSpeed float64
	// ReleasedAccelerateRate scales how fast the ripple finishes once the
	// pointer is released.
	ReleasedAccelerateRate float64
}

// DefaultStyle returns the baseline style every resolution starts from.
func DefaultStyle() Style {
	return Style{
		Color:                  color.RGBA{0, 0, 0, 255},
		BorderStyle:            BorderFull,
		BorderWidth:            1,
		FillMode:               FillRelative,
		FillRadius:             1.5,
		BorderWhileNotHover:    true,
		AnimateSpeed:           2000,
		ReleasedAccelerateRate: 3.5,
	}
}

// StyleOverride is one layer of style configuration. Nil fields leave the
// underlying value untouched.
type StyleOverride struct {
	Color                  *color.RGBA
	BorderStyle            *BorderStyle
	BorderWidth            *float64
	FillMode               *FillMode
	FillRadius             *float64
	BorderWhileNotHover    *bool
	AnimateSpeed           *float64
	ReleasedAccelerateRate *float64
}

// IsZero reports whether the override sets nothing.
func (o StyleOverride) IsZero() bool {
	return o == StyleOverride{}
}

// Apply returns s with every field set in o replaced.
func (o StyleOverride) Apply(s Style) Style {
	if o.Color != nil {
		s.Color = *o.Color
	}
	if o.BorderStyle != nil {
		s.BorderStyle = *o.BorderStyle
	}
	if o.BorderWidth != nil {
		s.BorderWidth = *o.BorderWidth
	}
	if o.FillMode != nil {
		s.FillMode = *o.FillMode
	}
	if o.FillRadius != nil {
		s.FillRadius = *o.FillRadius
	}
	if o.BorderWhileNotHover != nil {
		s.BorderWhileNotHover = *o.BorderWhileNotHover
	}
	if o.AnimateSpeed != nil {
		s.AnimateSpeed = *o.AnimateSpeed
	}
	if o.ReleasedAccelerateRate != nil {
		s.ReleasedAccelerateRate = *o.ReleasedAccelerateRate
	}
	return s
}

// Merge layers top over o and returns the combined override. Fields set in
// top win.
func (o StyleOverride) Merge(top StyleOverride) StyleOverride {
	if top.Color != nil {
		o.Color = top.Color
	}
	if top.BorderStyle != nil {
		o.BorderStyle = top.BorderStyle
	}
	if top.BorderWidth != nil {
		o.BorderWidth = top.BorderWidth
	}
	if top.FillMode != nil {
		o.FillMode = top.FillMode
	}
	if top.FillRadius != nil {
		o.FillRadius = top.FillRadius
	}
	if top.BorderWhileNotHover != nil {
		o.BorderWhileNotHover = top.BorderWhileNotHover
	}
	if top.AnimateSpeed != nil {
		o.AnimateSpeed = top.AnimateSpeed
	}
	if top.ReleasedAccelerateRate != nil {
		o.ReleasedAccelerateRate = top.ReleasedAccelerateRate
	}
	return o
}

// Resolve builds a Style from defaults and three override layers. Layers are
// applied in the order global, component, local, so the most specific layer
// wins.
func Resolve(defaults Style, global, component, local StyleOverride) Style {
	s := global.Apply(defaults)
	s = component.Apply(s)
	return local.Apply(s)
}

// SetOption assigns one style field by its configuration key. Keys are
// case-insensitive and accept both snake_case and camelCase spellings.
// Unknown keys return an error so callers can decide to ignore them.
func (o *StyleOverride) SetOption(key, value string) error {
	value = strings.TrimSpace(value)
	switch normalizeKey(key) {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		o.Color = &c
	case "borderstyle":
		b, err := ParseBorderStyle(value)
		if err != nil {
			return err
		}
		o.BorderStyle = &b
	case "borderwidth":
		f, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		o.BorderWidth = &f
	case "fillmode":
		m, err := ParseFillMode(value)
		if err != nil {
			return err
		}
		o.FillMode = &m
	case "fillradius":
		f, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		o.FillRadius = &f
	case "borderwhilenothover":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		o.BorderWhileNotHover = &b
	case "animatespeed", "revealanimatespeed":
		f, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		if f == 0 {
			return fmt.Errorf("%s must be greater than zero", key)
		}
		o.AnimateSpeed = &f
	case "releasedacceleraterate", "revealreleasedacceleraterate":
		f, err := parseNonNegative(key, value)
		if err != nil {
			return err
		}
		o.ReleasedAccelerateRate = &f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	return nil
}

// Options lists the set fields of o as key/value pairs in a stable order,
// using the same keys SetOption accepts.
func (o StyleOverride) Options() [][2]string {
	var out [][2]string
	if o.Color != nil {
		out = append(out, [2]string{"color", FormatColor(*o.Color)})
	}
	if o.BorderStyle != nil {
		out = append(out, [2]string{"border_style", o.BorderStyle.String()})
	}
	if o.BorderWidth != nil {
		out = append(out, [2]string{"border_width", formatFloat(*o.BorderWidth)})
	}
	if o.FillMode != nil {
		out = append(out, [2]string{"fill_mode", o.FillMode.String()})
	}
	if o.FillRadius != nil {
		out = append(out, [2]string{"fill_radius", formatFloat(*o.FillRadius)})
	}
	if o.BorderWhileNotHover != nil {
		out = append(out, [2]string{"border_while_not_hover", strconv.FormatBool(*o.BorderWhileNotHover)})
	}
	if o.AnimateSpeed != nil {
		out = append(out, [2]string{"animate_speed", formatFloat(*o.AnimateSpeed)})
	}
	if o.ReleasedAccelerateRate != nil {
		out = append(out, [2]string{"released_accelerate_rate", formatFloat(*o.ReleasedAccelerateRate)})
	}
	return out
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "_", "")
	return strings.ReplaceAll(key, "-", "")
}

func parseNonNegative(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", key, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a finite number", key)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseColor accepts an RGB triple as text ("255, 255, 255") or a hex
// color ("#RRGGBB"). The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("color %q must be an RGB triple", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color component %q: %w", p, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("color component %d out of range", v)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

// FormatColor renders c as the RGB triple ParseColor accepts.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}
