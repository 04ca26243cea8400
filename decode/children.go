package decode

import "github.com/rvue/rvue/events"

// Children drives the body of one entity decode. The entity's own start
// event has already been consumed by the caller. Children pulls events
// from cur until the entity's own end tag is seen, ignoring whitespace
// and the start/end events of the named wrapper elements (pure list
// holders with no data of their own), and hands every other start event
// to child. The child func must in turn consume exactly the subtree of
// the start event it is given, typically by delegating to another
// entity decoder sharing cur.
//
// Any event outside that shape fails with UnexpectedEventError;
// exhausting cur before the end tag fails with ErrUnexpectedEnd.
func Children(cur *events.Cursor, element string, wrappers []string, child func(events.Start) error) error {
	for {
		ev, ok := cur.Next()
		if !ok {
			return ErrUnexpectedEnd
		}
		switch ev := ev.(type) {
		case events.Start:
			if isWrapper(wrappers, ev.Name) {
				continue
			}
			if err := child(ev); err != nil {
				return err
			}
		case events.End:
			if ev.Name == element {
				return nil
			}
			if isWrapper(wrappers, ev.Name) {
				continue
			}
			return &UnexpectedEventError{Event: ev}
		case events.Whitespace:
		default:
			return &UnexpectedEventError{Event: ev}
		}
	}
}

// Leaf consumes the remainder of an element that has no children,
// through its own end tag.
func Leaf(cur *events.Cursor, element string) error {
	return Children(cur, element, nil, func(s events.Start) error {
		return &UnexpectedEventError{Event: s}
	})
}

func isWrapper(wrappers []string, name string) bool {
	for _, w := range wrappers {
		if w == name {
			return true
		}
	}
	return false
}
