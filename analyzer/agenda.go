package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxAgendaItems  = 10
	maxParticipants = 15
)

var agendaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)agenda\s*item\s*(\d+)[:\-]\s*([^\n]+)`),
	regexp.MustCompile(`(?i)item\s*(\d+)[:\-]\s*([^\n]+)`),
	regexp.MustCompile(`(?i)(\d+)\.\s*([^\n]{10,100})`),
}

// extractAgendaItems collects numbered agenda entries in match order, pattern
// by pattern. All matched items start in the "pending" status.
func extractAgendaItems(content string) []AgendaItem {
	items := []AgendaItem{}

	for _, pattern := range agendaPatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			items = append(items, AgendaItem{
				Number:      m[1],
				Description: strings.TrimSpace(m[2]),
				Status:      "pending",
			})
		}
	}

	if len(items) > maxAgendaItems {
		items = items[:maxAgendaItems]
	}
	return items
}

var participantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:mayor|council\s*member|supervisor|commissioner)\s+([a-z\s]+?)(?:\s|,|$)`),
	regexp.MustCompile(`(?:present:|attending:)\s*([^\n]+)`),
}

// extractParticipants pulls attendee names from civic-title and roll-call
// patterns. Role information beyond "Council Member" is not recoverable from
// free text, so every participant gets that role and is marked present.
func extractParticipants(content string) []Participant {
	contentLower := strings.ToLower(content)
	participants := []Participant{}

	for _, pattern := range participantPatterns {
		for _, m := range pattern.FindAllStringSubmatch(contentLower, -1) {
			name := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(name) > 2 {
				participants = append(participants, Participant{
					Name:    titleCase(name),
					Role:    "Council Member",
					Present: true,
				})
			}
		}
	}

	if len(participants) > maxParticipants {
		participants = participants[:maxParticipants]
	}
	return participants
}
