package challenge

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		name      string
		firstname string
		lastname  string
		username  string
		expected  string
	}{
		{"full name wins", "Theo", "Laperrouse", "theolap", "Theo Laperrouse"},
		{"firstname alone", "Theo", "", "theolap", "Theo"},
		{"lastname alone falls back to username", "", "Laperrouse", "theolap", "theolap"},
		{"username fallback", "", "", "theolap", "theolap"},
		{"placeholder when nothing known", "", "", "", "Quelqu'un"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplayName(tc.firstname, tc.lastname, tc.username))
		})
	}
}

func TestByName(t *testing.T) {
	run, ok := ByName("Run")
	assert.True(t, ok)
	assert.Equal(t, []string{"Run", "TrailRun"}, run.Types)
	assert.Equal(t, float64(10000), run.MinDistance)

	_, ok = ByName("Yoga")
	assert.False(t, ok)
}

func TestMessageSubstitution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, cat := range Categories {
		for i := 0; i < 20; i++ {
			msg := OvertookMessage(rng, cat.Name, "Alice")
			assert.Contains(t, msg, "Alice")
			assert.NotContains(t, msg, "{name}")

			msg = OvertakenMessage(rng, cat.Name, "Bob")
			assert.Contains(t, msg, "Bob")
			assert.NotContains(t, msg, "{name}")
		}
	}
}

func TestMessageUnknownCategoryFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	msg := OvertookMessage(rng, "Yoga", "Alice")
	assert.Contains(t, msg, "Alice")

	// The fallback pool is the first category's.
	found := false
	for _, template := range overtookMessages[Categories[0].Name] {
		if strings.ReplaceAll(template, "{name}", "Alice") == msg {
			found = true
			break
		}
	}
	assert.True(t, found, "fallback message should come from the %s pool", Categories[0].Name)
}

func TestMessageSelectionIsSeedDeterministic(t *testing.T) {
	first := OvertookMessage(rand.New(rand.NewSource(42)), "Run", "Alice")
	second := OvertookMessage(rand.New(rand.NewSource(42)), "Run", "Alice")
	assert.Equal(t, first, second)
}
