/*
 * STA - SI unit value parsing for liberty unit attributes.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package units parses the "<mult><scale><unit>" tokens a liberty
// library's time_unit/capacitive_load_unit/voltage_unit/... attributes
// carry (spec component external interfaces, section 6). Parsing the
// liberty file itself is out of scope; this is the semantic value the
// front-end hands the library builder after lexing the attribute.
package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies the physical quantity a Value measures.
type Unit int

const (
	Second Unit = iota
	Farad
	Volt
	Ampere
	Watt
	Ohm
	Meter
)

func (u Unit) String() string {
	switch u {
	case Second:
		return "s"
	case Farad:
		return "F"
	case Volt:
		return "V"
	case Ampere:
		return "A"
	case Watt:
		return "W"
	case Ohm:
		return "Ohm"
	case Meter:
		return "m"
	default:
		return "?"
	}
}

// Value is a unit together with the multiplier that converts a
// library-unit quantity into SI (e.g. "1ns" parses to {Second, 1e-9}:
// a value of 1 in this unit is 1e-9 seconds).
type Value struct {
	Unit  Unit
	Scale float64
}

// ErrUnknownUnit is returned when the trailing unit letter(s) do not
// match any known suffix; spec section 7 treats this as a warning,
// not a fatal error -- callers substitute a Value with Scale 1.
var ErrUnknownUnit = errors.New("unknown unit suffix")

var scalePrefixes = map[byte]float64{
	'k': 1e3, 'K': 1e3,
	'm': 1e-3,
	'u': 1e-6,
	'n': 1e-9,
	'p': 1e-12,
	'f': 1e-15,
}

// Parse decomposes a unit token of the form <mult><scale><unit>,
// mult in {1,10,100,1000}, scale one of k/m/u(mu)/n/p/f, unit one of
// s/F/V/A/W/Ohm/m (distance). Longer unit suffixes ("Ohm") are
// matched before single-letter ones.
func Parse(raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty unit token", ErrUnknownUnit)
	}

	var unit Unit
	switch {
	case strings.HasSuffix(s, "Ohm"):
		unit = Ohm
		s = strings.TrimSuffix(s, "Ohm")
	case strings.HasSuffix(s, "F"):
		unit, s = Farad, s[:len(s)-1]
	case strings.HasSuffix(s, "V"):
		unit, s = Volt, s[:len(s)-1]
	case strings.HasSuffix(s, "A"):
		unit, s = Ampere, s[:len(s)-1]
	case strings.HasSuffix(s, "W"):
		unit, s = Watt, s[:len(s)-1]
	case strings.HasSuffix(s, "s"):
		unit, s = Second, s[:len(s)-1]
	case strings.HasSuffix(s, "m"):
		unit, s = Meter, s[:len(s)-1]
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
	}

	scale, rest := parseScale(s)

	mult := 1.0
	if rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
		}
		mult = float64(n)
	}

	return Value{Unit: unit, Scale: mult * scale}, nil
}

// parseScale strips a trailing scale letter (or the two-byte "µ"/"μ"
// UTF-8 sequence) from s and returns its multiplier (1.0 if none).
// Called only after Parse has already stripped the unit suffix, so a
// plain 'm' here is unambiguously milli, never the meter unit.
func parseScale(s string) (scale float64, rest string) {
	if strings.HasSuffix(s, "µ") || strings.HasSuffix(s, "μ") {
		return 1e-6, strings.TrimSuffix(strings.TrimSuffix(s, "µ"), "μ")
	}
	if s == "" {
		return 1.0, s
	}
	last := s[len(s)-1]
	if mult, ok := scalePrefixes[last]; ok {
		return mult, s[:len(s)-1]
	}
	return 1.0, s
}
