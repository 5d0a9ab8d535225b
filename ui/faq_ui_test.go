package ui

import (
	"testing"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/stretchr/testify/assert"
)

func TestAccordionKeepsOneEntryOpen(t *testing.T) {
	a := NewAccordion()
	assert.False(t, a.IsOpen(0))

	a.Toggle(2)
	assert.True(t, a.IsOpen(2))

	a.Toggle(4)
	assert.True(t, a.IsOpen(4))
	assert.False(t, a.IsOpen(2))

	a.Toggle(4)
	assert.False(t, a.IsOpen(4))
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, "What is CoffeeOn?  +", entryLabel("What is CoffeeOn?", false, false))
	assert.Equal(t, "What is CoffeeOn?  ×", entryLabel("What is CoffeeOn?", true, false))
	assert.Equal(t, "+  ما هو CoffeeOn؟", entryLabel("ما هو CoffeeOn؟", false, true))
}

func TestFAQTablesMatch(t *testing.T) {
	eng, ar := cfg.TextFor(cfg.LangENG).FAQ, cfg.TextFor(cfg.LangAR).FAQ
	assert.Len(t, ar.Entries, len(eng.Entries))
	assert.Equal(t, "العربية", eng.Toggle, "the toggle names the other language")
	assert.Equal(t, "English", ar.Toggle)
	for _, e := range ar.Entries {
		assert.NotEmpty(t, e.Question)
		assert.NotEmpty(t, e.Answer)
	}
}
