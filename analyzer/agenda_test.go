package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAgendaItemsMatchesNumberedEntries(t *testing.T) {
	content := "Agenda Item 1: Approve the affordable housing development plan"

	items := extractAgendaItems(content)

	assert.NotEmpty(t, items)
	assert.Equal(t, "1", items[0].Number)
	assert.Contains(t, items[0].Description, "Approve the affordable housing development plan")
	for _, item := range items {
		assert.Equal(t, "pending", item.Status)
	}
}

func TestExtractAgendaItemsCapsAtTen(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&b, "%d. resolution number ninety dash %d\n", i, i)
	}

	items := extractAgendaItems(b.String())

	assert.Len(t, items, maxAgendaItems)
}

func TestExtractParticipantsFromTitlePatterns(t *testing.T) {
	content := "Mayor Johnson opened the session. Council Member Lee seconded the motion."

	participants := extractParticipants(content)

	assert.NotEmpty(t, participants)
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		assert.Equal(t, "Council Member", p.Role)
		assert.True(t, p.Present)
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Johnson")
	assert.Contains(t, names, "Lee")
}

func TestExtractParticipantsCapsAtFifteen(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "Commissioner member%c attended. ", 'a'+rune(i))
	}

	participants := extractParticipants(b.String())

	assert.Len(t, participants, maxParticipants)
}
