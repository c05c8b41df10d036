// Package countries holds the dial-code directory used by the phone field.
package countries

import (
	"errors"
	"fmt"
	"sort"
)

// regionalIndicatorA is the codepoint of REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorA = 0x1F1E6

// ErrInvalidISO2 is returned when a code is not exactly two uppercase ASCII letters.
var ErrInvalidISO2 = errors.New("iso2 must be two uppercase ASCII letters")

// Country is one entry of the directory.
type Country struct {
	Name     string
	ISO2     string
	DialCode string
	Flag     string
}

// Label is the row text shown in the country picker.
func (c Country) Label() string {
	return fmt.Sprintf("%s  %s  %s", c.Flag, c.Name, c.DialCode)
}

// DeriveFlag maps each letter of iso2 onto its regional indicator symbol and
// joins the two runes into a flag emoji.
func DeriveFlag(iso2 string) (string, error) {
	if len(iso2) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidISO2, iso2)
	}
	runes := make([]rune, 0, 2)
	for i := 0; i < len(iso2); i++ {
		ch := iso2[i]
		if ch < 'A' || ch > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidISO2, iso2)
		}
		runes = append(runes, rune(regionalIndicatorA+int(ch-'A')))
	}
	return string(runes), nil
}

// MustDeriveFlag is DeriveFlag for authored data; it panics on a bad code.
func MustDeriveFlag(iso2 string) string {
	flag, err := DeriveFlag(iso2)
	if err != nil {
		panic(err)
	}
	return flag
}

var directory = build(entries)

func build(src []Country) []Country {
	out := make([]Country, len(src))
	for i, c := range src {
		c.Flag = MustDeriveFlag(c.ISO2)
		out[i] = c
	}
	return out
}

// All returns the directory in authored order.
func All() []Country {
	return append([]Country(nil), directory...)
}

// SortedByName returns the directory ordered by display name.
func SortedByName() []Country {
	out := All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByISO2 looks up an entry by its uppercase code.
func ByISO2(code string) (Country, bool) {
	return lookup(directory, code)
}

// Default returns Germany, or the first entry if the table ever loses it.
func Default() Country {
	return defaultFrom(directory)
}

func lookup(set []Country, code string) (Country, bool) {
	for _, c := range set {
		if c.ISO2 == code {
			return c, true
		}
	}
	return Country{}, false
}

func defaultFrom(set []Country) Country {
	if c, ok := lookup(set, "DE"); ok {
		return c
	}
	// unreachable with the shipped table
	return set[0]
}
