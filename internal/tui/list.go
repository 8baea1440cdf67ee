package tui

import (
	"fmt"
	"strings"
)

const matchesHotKeys = "enter: open │ s: favorite │ c: copy email │ f: filters │ r: refresh │ p: profile │ l: log out │ q: quit"

func (m mainLoopModel) viewMatches() string {
	snap := m.query.Snapshot()

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Filters: " + filtersText(snap.Filters)))
	b.WriteString("\n\n")
	b.WriteString(m.statusLines())

	if snap.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading matches...\n")
	}

	if len(snap.Matches) == 0 {
		if !snap.Loading {
			b.WriteString("No matches found. Try changing the filters.\n")
		}
		return renderPage("MATCHES", strings.TrimRight(b.String(), "\n"), matchesHotKeys)
	}

	b.WriteString(fmt.Sprintf("%d matches\n\n", snap.MatchCount))
	b.WriteString("    │ ♥ │ Name                 │ Age │ City            │ Interests\n")
	b.WriteString("────┼───┼──────────────────────┼─────┼─────────────────┼──────────────────────\n")
	for i, match := range snap.Matches {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		fav := " "
		if m.query.IsFavorite(match.ID) {
			fav = favoriteStyle.Render("♥")
		}

		b.WriteString(fmt.Sprintf(
			"%s %-2d│ %s │ %-20s │ %-3d │ %-15s │ %s\n",
			cursor,
			i+1,
			fav,
			fitText(match.Name, 20),
			match.Age,
			fitText(valueOrDash(match.City), 15),
			fitText(interestsText(match), 30),
		))
	}

	return renderPage("MATCHES", strings.TrimRight(b.String(), "\n"), matchesHotKeys)
}
