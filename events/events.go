package events

import "fmt"

// Event is a single item of a tokenized markup document.
// The concrete types are Start, End, Text and Whitespace.
type Event interface {
	event()
	fmt.Stringer
}

// Attr is one attribute of a Start event, in source order.
type Attr struct {
	Name  string
	Value string
}

// Start is an element-open event.
type Start struct {
	Name string
	Attr []Attr
}

// End is an element-close event.
type End struct {
	Name string
}

// Text is a character data event with non-whitespace content.
type Text struct {
	Value string
}

// Whitespace is a character data event containing only formatting
// whitespace.
type Whitespace struct {
	Value string
}

func (Start) event()      {}
func (End) event()        {}
func (Text) event()       {}
func (Whitespace) event() {}

func (e Start) String() string      { return fmt.Sprintf("<%s>", e.Name) }
func (e End) String() string        { return fmt.Sprintf("</%s>", e.Name) }
func (e Text) String() string       { return fmt.Sprintf("text %q", e.Value) }
func (e Whitespace) String() string { return "whitespace" }
