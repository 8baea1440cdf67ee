package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) viewMatchDetail() string {
	snap := m.query.Snapshot()
	match, ok := m.current(snap)
	if !ok {
		return renderPage("MATCH", "Match not found", "esc: back")
	}

	favorite := "no"
	if m.query.IsFavorite(match.ID) {
		favorite = favoriteStyle.Render("yes ♥")
	}

	var b strings.Builder
	b.WriteString(m.statusLines())
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("Name       │ %s\n", valueOrDash(match.Name)))
	b.WriteString(fmt.Sprintf("Age        │ %d\n", match.Age))
	b.WriteString(fmt.Sprintf("Gender     │ %s\n", valueOrDash(match.Gender)))
	b.WriteString(fmt.Sprintf("City       │ %s\n", valueOrDash(match.City)))
	b.WriteString(fmt.Sprintf("Email      │ %s\n", valueOrDash(match.Email)))
	b.WriteString(fmt.Sprintf("Interests  │ %s\n", interestsText(match)))
	b.WriteString(fmt.Sprintf("Favorite   │ %s\n", favorite))

	return renderPage(
		"MATCH: "+strings.ToUpper(fitText(match.Name, 30)),
		strings.TrimRight(b.String(), "\n"),
		"esc: back │ s: favorite │ c: copy email │ q: quit",
	)
}
