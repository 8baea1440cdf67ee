package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-match-client/models"
)

func TestSplitInterests(t *testing.T) {
	assert.Equal(t, []string{"music", "hiking"}, splitInterests("music, Hiking ,,"))
	assert.Empty(t, splitInterests("  , "))
}

func TestParseOptionalInt(t *testing.T) {
	v, ok := parseOptionalInt(" 25 ")
	assert.True(t, ok)
	assert.Equal(t, 25, *v)

	v, ok = parseOptionalInt("")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = parseOptionalInt("abc")
	assert.False(t, ok)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Franç...", fitText("Françoise-Éloïse", 8))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestFiltersText(t *testing.T) {
	assert.Equal(t, "none", filtersText(models.MatchFilters{}))

	minAge, city, yes := 25, "Paris", true
	got := filtersText(models.MatchFilters{MinAge: &minAge, City: &city, InterestMatch: &yes})
	assert.Equal(t, "min age 25, city Paris, shared interests", got)
}

func TestNextInterestMatch_Cycles(t *testing.T) {
	v := nextInterestMatch(nil)
	assert.Equal(t, "yes", interestMatchText(v))
	v = nextInterestMatch(v)
	assert.Equal(t, "no", interestMatchText(v))
	v = nextInterestMatch(v)
	assert.Equal(t, "any", interestMatchText(v))
}

func TestForm_FocusValuesAndErrors(t *testing.T) {
	f := newForm(
		textField("email", "Email", ""),
		passwordField("password", "Password"),
	)

	f.setValue("email", "a@b.c")
	assert.Equal(t, "a@b.c", f.value("email"))
	assert.Equal(t, "", f.value("missing"))

	f.focusNext()
	assert.Equal(t, 1, f.focus)
	f.focusNext()
	assert.Equal(t, 0, f.focus)
	f.focusPrev()
	assert.Equal(t, 1, f.focus)

	f.setErrors(map[string]string{"email": "Invalid email format"})
	assert.Contains(t, f.view(), "Invalid email format")

	f.reset()
	assert.Equal(t, "", f.value("email"))
	assert.NotContains(t, f.view(), "Invalid email format")
	assert.Equal(t, 0, f.focus)
}
