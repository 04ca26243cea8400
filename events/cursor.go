package events

// Cursor is a mutable, single-pass handle over an event sequence.
//
// A decode call creates one Cursor and passes it by reference into every
// entity decoder; the recursive calls all advance the same shared
// position. A Cursor is never copied and is not safe for concurrent use.
type Cursor struct {
	events []Event
	pos    int
}

// NewCursor returns a Cursor positioned before the first event of seq.
// The sequence is borrowed read-only; it is not copied.
func NewCursor(seq []Event) *Cursor { return &Cursor{events: seq} }

// Next returns the next event and advances the cursor, or ok=false once
// the sequence is exhausted.
func (c *Cursor) Next() (ev Event, ok bool) {
	if c.pos >= len(c.events) {
		return nil, false
	}
	ev = c.events[c.pos]
	c.pos++
	return ev, true
}

// Remaining returns the number of events not yet consumed.
func (c *Cursor) Remaining() int { return len(c.events) - c.pos }
