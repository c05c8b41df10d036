package countries

import (
	"errors"
	"sort"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestDeriveFlagAllLetterPairs(t *testing.T) {
	t.Parallel()

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			flag, err := DeriveFlag(code)
			require.NoError(t, err, code)
			require.Equal(t, 2, utf8.RuneCountInString(flag), code)

			runes := []rune(flag)
			require.Equal(t, rune(0x1F1E6)+(a-'A'), runes[0], code)
			require.Equal(t, rune(0x1F1E6)+(b-'A'), runes[1], code)
			require.Equal(t, a+127397, runes[0], code)
		}
	}
}

func TestDeriveFlagKnownCountries(t *testing.T) {
	t.Parallel()

	require.Equal(t, "🇩🇪", MustDeriveFlag("DE"))
	require.Equal(t, "🇺🇸", MustDeriveFlag("US"))
	require.Equal(t, "🇪🇸", MustDeriveFlag("ES"))
}

func TestDeriveFlagRejectsMalformedCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "D", "DEU", "de", "De", "D1", "Ü", "  "} {
		flag, err := DeriveFlag(code)
		require.Error(t, err, code)
		require.True(t, errors.Is(err, ErrInvalidISO2), code)
		require.Empty(t, flag, code)
	}
	require.Panics(t, func() { MustDeriveFlag("zz") })
}

func TestTableEntriesAreWellFormed(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 59)
	seen := map[string]bool{}
	for _, c := range all {
		require.NotEmpty(t, c.Name)
		require.Regexp(t, `^[A-Z]{2}$`, c.ISO2)
		require.Regexp(t, `^\+[0-9]+$`, c.DialCode)
		require.False(t, seen[c.ISO2], "duplicate %s", c.ISO2)
		seen[c.ISO2] = true

		want, err := DeriveFlag(c.ISO2)
		require.NoError(t, err)
		require.Equal(t, want, c.Flag, c.ISO2)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0].Name = "Atlantis"
	require.Equal(t, "Argentina", All()[0].Name)
}

func TestSortedByName(t *testing.T) {
	t.Parallel()

	sorted := SortedByName()
	require.Len(t, sorted, len(All()))
	require.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name }))
}

func TestByISO2(t *testing.T) {
	t.Parallel()

	de, ok := ByISO2("DE")
	require.True(t, ok)
	require.Equal(t, "Germany", de.Name)
	require.Equal(t, "+49", de.DialCode)

	us, ok := ByISO2("US")
	require.True(t, ok)
	require.Equal(t, "+1", us.DialCode)

	for _, code := range []string{"zz", "ZZ", "de", "", "DEU"} {
		_, ok := ByISO2(code)
		require.False(t, ok, code)
	}
}

func TestDefaultIsGermany(t *testing.T) {
	t.Parallel()

	d := Default()
	require.Equal(t, "DE", d.ISO2)
	require.Equal(t, "🇩🇪", d.Flag)
}

func TestDefaultFallsBackToFirstEntry(t *testing.T) {
	t.Parallel()

	set := build([]Country{
		{Name: "Spain", ISO2: "ES", DialCode: "+34"},
		{Name: "France", ISO2: "FR", DialCode: "+33"},
	})
	require.Equal(t, "ES", defaultFrom(set).ISO2)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	de, _ := ByISO2("DE")
	require.Equal(t, "🇩🇪  Germany  +49", de.Label())
}
