package widgetdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPropsDeterministic(t *testing.T) {
	props := map[string]string{"label": "Save", "variant": "primary", "width": "120"}

	h1 := HashProps(props)
	h2 := HashProps(map[string]string{"width": "120", "label": "Save", "variant": "primary"})
	assert.Equal(t, h1, h2, "hash must not depend on map iteration order")
}

func TestHashPropsDistinguishes(t *testing.T) {
	base := map[string]string{"label": "Save"}

	assert.NotEqual(t, HashProps(base), HashProps(map[string]string{"label": "Cancel"}))
	assert.NotEqual(t, HashProps(base), HashProps(map[string]string{"label": "Save", "disabled": "true"}))
	assert.NotEqual(t, HashProps(base), HashProps(nil))

	// Key/value boundaries must not blur.
	assert.NotEqual(t,
		HashProps(map[string]string{"a": "b"}),
		HashProps(map[string]string{"ab": ""}),
	)
}

func TestHashString(t *testing.T) {
	assert.Equal(t, HashString("hello"), HashString("hello"))
	assert.NotEqual(t, HashString("hello"), HashString("world"))
	assert.NotEqual(t, HashString(""), HashString(" "))
}
