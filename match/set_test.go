package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clamlib/clam/match"
)

func TestSetContains(t *testing.T) {
	s := match.OneOf("abc")
	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('c'))
	assert.False(t, s.Contains('d'))
	assert.False(t, s.Contains(0))

	assert.True(t, match.Any.Contains('a'))
	assert.True(t, match.Any.Contains(' '))
	assert.True(t, match.Any.Contains(0))

	assert.False(t, match.OneOf("").Contains('a'))
	assert.False(t, (match.Set{}).Contains('a'), "the zero value accepts nothing")
}
