package tinyqrc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAllowedAttribute(t *testing.T) {
	for _, name := range []string{"id", "class", "style", "preserveAspectRatio", "data-id", "data-foo-bar", "aria-hidden"} {
		assert.True(t, AllowedAttribute(name), name)
	}
	for _, name := range []string{"onload", "href", "width", "viewBox", "xmlns", "role", "aria-label",
		"data-generator", "data-", "data-Foo", "data-x y", `data-a"b`, ""} {
		assert.False(t, AllowedAttribute(name), name)
	}
}

func TestValidateAttributes(t *testing.T) {
	assert.NoError(t, validateAttributes(nil))
	assert.NoError(t, validateAttributes([]Attr{{"id", "a"}, {"class", "b"}}))

	err := validateAttributes([]Attr{{"id", "a"}, {"id", "b"}})
	assert.True(t, errors.Is(err, ErrInvalidOptions))

	err = validateAttributes([]Attr{{"onclick", "x"}})
	assert.True(t, errors.Is(err, ErrInvalidOptions))
}
