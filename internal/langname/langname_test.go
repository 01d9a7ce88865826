package langname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "French", DisplayName("fr"))
	assert.Equal(t, "German", DisplayName("de"))
	// Unparseable codes fall back to the code.
	assert.Equal(t, "not-a-lang!", DisplayName("not-a-lang!"))
}

func TestAutonym(t *testing.T) {
	assert.Equal(t, "français", Autonym("fr"))
	assert.Equal(t, "Deutsch", Autonym("de"))
	assert.Equal(t, "not-a-lang!", Autonym("not-a-lang!"))
}
