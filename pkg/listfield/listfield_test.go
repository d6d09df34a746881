package listfield_test

import (
	"encoding/json"
	"testing"

	"dailydose/pkg/listfield"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	// Legacy comma-separated encoding
	assert.Equal(t, []string{"a", "b", "c"}, listfield.Decode("a, b, c"))
	assert.Equal(t, []string{"a", "b"}, listfield.Decode("a,b"))

	// Canonical JSON array encoding
	assert.Equal(t, []string{"a", "b"}, listfield.Decode(`["a","b"]`))
	assert.Equal(t, []string{}, listfield.Decode(`[]`))
	assert.Equal(t, []string{}, listfield.Decode(`null`))

	// Empty and blank values
	assert.Equal(t, []string{}, listfield.Decode(""))
	assert.Equal(t, []string{}, listfield.Decode("   "))

	// Trailing separators and padding are dropped
	assert.Equal(t, []string{"only"}, listfield.Decode(" only, "))
}

func TestStringListScan(t *testing.T) {
	var l listfield.StringList

	assert.NoError(t, l.Scan(`["x","y"]`))
	assert.Equal(t, listfield.StringList{"x", "y"}, l)

	assert.NoError(t, l.Scan([]byte("one, two")))
	assert.Equal(t, listfield.StringList{"one", "two"}, l)

	assert.NoError(t, l.Scan(nil))
	assert.Equal(t, listfield.StringList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestStringListMarshalJSON(t *testing.T) {
	// A list never scanned from the database is nil; it must still
	// serialize as an empty array, not null.
	b, err := json.Marshal(listfield.StringList(nil))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = json.Marshal(listfield.StringList{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(b))
}

func TestStringListValue(t *testing.T) {
	v, err := listfield.StringList{"a", "b"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	v, err = listfield.StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}
