package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-match-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func interestsText(user models.User) string {
	return valueOrDash(strings.Join(user.InterestNames(), ", "))
}

// suggestedInterests is shown as a hint under the interests input.
var suggestedInterests = []string{
	"reading", "cooking", "traveling", "photography", "hiking", "music",
	"movies", "sports", "art", "technology", "dancing", "yoga", "gaming",
}

// splitInterests turns "music, Hiking ,," into ["music", "hiking"].
func splitInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseOptionalInt returns nil for blank input and ok=false for garbage.
func parseOptionalInt(raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func filtersText(f models.MatchFilters) string {
	parts := make([]string, 0, 4)
	if f.MinAge != nil {
		parts = append(parts, "min age "+strconv.Itoa(*f.MinAge))
	}
	if f.MaxAge != nil {
		parts = append(parts, "max age "+strconv.Itoa(*f.MaxAge))
	}
	if f.City != nil {
		parts = append(parts, "city "+*f.City)
	}
	if f.InterestMatch != nil && *f.InterestMatch {
		parts = append(parts, "shared interests")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
