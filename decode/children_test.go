package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvue/rvue/events"
)

// enter consumes the first start event, handing the remainder of the
// sequence to the test body.
func enter(t *testing.T, input string) (events.Start, *events.Cursor) {
	t.Helper()
	seq, err := events.Tokenize(strings.NewReader(input))
	require.NoError(t, err)
	cur := events.NewCursor(seq)
	ev, ok := cur.Next()
	require.True(t, ok)
	start, ok := ev.(events.Start)
	require.True(t, ok)
	return start, cur
}

func TestChildren(t *testing.T) {
	input := `<Mark>
  <Assignments>
    <Assignment/>
    <Assignment/>
  </Assignments>
</Mark>`
	_, cur := enter(t, input)

	var seen int
	err := Children(cur, "Mark", []string{"Assignments"}, func(s events.Start) error {
		assert.Equal(t, "Assignment", s.Name)
		seen++
		// consume the child's own subtree
		return Leaf(cur, "Assignment")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	// the loop stops exactly at the element's own end tag
	assert.Equal(t, 0, cur.Remaining())
}

func TestChildrenStopsAtOwnSubtree(t *testing.T) {
	// two siblings: decoding the first must not consume into the second
	input := `<root><a/><b/></root>`
	_, cur := enter(t, input)

	ev, ok := cur.Next()
	require.True(t, ok)
	require.Equal(t, "a", ev.(events.Start).Name)
	require.NoError(t, Leaf(cur, "a"))

	ev, ok = cur.Next()
	require.True(t, ok)
	assert.Equal(t, "b", ev.(events.Start).Name)
}

func TestChildrenUnexpectedEvent(t *testing.T) {
	t.Run("text content", func(t *testing.T) {
		_, cur := enter(t, `<a>stray</a>`)
		err := Leaf(cur, "a")
		var unexpected *UnexpectedEventError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, events.Text{Value: "stray"}, unexpected.Event)
	})

	t.Run("foreign end tag", func(t *testing.T) {
		// hand-built sequence: an end tag that is neither our own nor a
		// known wrapper
		cur := events.NewCursor([]events.Event{events.End{Name: "b"}})
		err := Leaf(cur, "a")
		var unexpected *UnexpectedEventError
		require.ErrorAs(t, err, &unexpected)
	})
}

func TestChildrenUnexpectedEnd(t *testing.T) {
	// hand-built sequence: the closing tag never arrives
	cur := events.NewCursor([]events.Event{events.Whitespace{Value: " "}})
	err := Leaf(cur, "a")
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
}

func TestChildrenWrapperEndIgnored(t *testing.T) {
	// self-closing wrapper produces a start and an end event; both are
	// skipped
	input := `<Mark><Assignments/></Mark>`
	_, cur := enter(t, input)

	err := Children(cur, "Mark", []string{"Assignments"}, func(s events.Start) error {
		t.Fatalf("unexpected child %s", s)
		return nil
	})
	require.NoError(t, err)
}
