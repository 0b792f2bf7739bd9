package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// revealPrefix marks keys that configure the reveal style layer.
const revealPrefix = "reveal."

// Parse reads a theme definition from an io.Reader.
// The format is a simple key-value pair per line: Key: #RRGGBB or #RRGGBBAA.
// Reveal style keys are written as Reveal.<option>: value.
func Parse(r io.Reader) (*Theme, error) {
	t := Default() // Start with defaults
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if err := SetField(t, parts[0], parts[1]); err != nil {
			return nil, err
		}
	}

	return t, scanner.Err()
}

// SetField assigns one theme key. Color keys match field names
// case-insensitively; unknown keys are ignored for forward compatibility.
func SetField(t *Theme, key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	if len(key) > len(revealPrefix) && strings.EqualFold(key[:len(revealPrefix)], revealPrefix) {
		if err := t.Reveal.SetOption(key[len(revealPrefix):], value); err != nil {
			return fmt.Errorf("invalid value for key %s: %w", key, err)
		}
		return nil
	}

	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != reflect.TypeOf(color.RGBA{}) {
			continue
		}
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Fields lists the theme as key/value pairs in the order Parse accepts
// them back.
func Fields(t *Theme) [][2]string {
	out := [][2]string{{"Name", t.Name}}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != reflect.TypeOf(color.RGBA{}) {
			continue
		}
		col := val.Field(i).Interface().(color.RGBA)
		out = append(out, [2]string{typ.Field(i).Name, ToHex(col)})
	}
	for _, kv := range t.Reveal.Options() {
		out = append(out, [2]string{"Reveal." + kv[0], kv[1]})
	}
	return out
}

// ParseColor parses #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		// #RRGGBB
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	} else if len(hex) == 8 {
		// #RRGGBBAA
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// ToHex formats c as #RRGGBB, or #RRGGBBAA when it is translucent.
func ToHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
