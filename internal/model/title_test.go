package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleKeyFoldsCaseAndPunctuation(t *testing.T) {
	cases := map[string]string{
		"Deadpool & Wolverine":      "deadpool wolverine",
		"DEADPOOL &   WOLVERINE":    "deadpool wolverine",
		"Spider-Man: No Way Home":   "spider man no way home",
		"Spider Man - No Way Home!": "spider man no way home",
		"  It Ends With Us  ":       "it ends with us",
		"Alien: Romulus":            "alien romulus",
		"M3GAN 2.0":                 "m3gan 2 0",
	}
	for in, want := range cases {
		assert.Equal(t, want, TitleKey(in), "input %q", in)
	}
}

func TestTitleKeyJoinsAcrossSources(t *testing.T) {
	// The ranking source and the metadata source print the same film with
	// different casing and punctuation; both must reduce to one key.
	assert.Equal(t, TitleKey("Twisters!"), TitleKey("twisters"))
	// Spelled-out conjunctions are a genuine difference, not noise.
	assert.NotEqual(t, TitleKey("Deadpool & Wolverine"), TitleKey("Deadpool and Wolverine"))
}
