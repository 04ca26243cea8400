package decode

import (
	"strconv"
	"time"

	"github.com/rvue/rvue/events"
)

// DateLayout is the portal's date format: non-zero-padded M/D/YYYY.
const DateLayout = "1/2/2006"

// Attrs is a name to value lookup over one element's attribute list.
type Attrs map[string]string

// AttrMap builds an Attrs lookup from an element's attributes.
// Duplicate names resolve to the last occurrence.
func AttrMap(attr []events.Attr) Attrs {
	m := make(Attrs, len(attr))
	for _, a := range attr {
		m[a.Name] = a.Value
	}
	return m
}

// String returns the named attribute value, or a MissingAttributeError
// if the attribute is absent.
func (a Attrs) String(name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", &MissingAttributeError{Name: name}
	}
	return v, nil
}

// Int returns the named attribute parsed as a decimal integer.
func (a Attrs) Int(name string) (int, error) {
	v, err := a.String(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ParseError{Kind: KindInt, Attribute: name, Raw: v, Err: err}
	}
	return n, nil
}

// Float returns the named attribute parsed as a float.
func (a Attrs) Float(name string) (float64, error) {
	v, err := a.String(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &ParseError{Kind: KindFloat, Attribute: name, Raw: v, Err: err}
	}
	return f, nil
}

// Bool returns the named attribute parsed as a boolean.
func (a Attrs) Bool(name string) (bool, error) {
	v, err := a.String(name)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &ParseError{Kind: KindBool, Attribute: name, Raw: v, Err: err}
	}
	return b, nil
}

// Date returns the named attribute parsed per DateLayout.
func (a Attrs) Date(name string) (time.Time, error) {
	v, err := a.String(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, &ParseError{Kind: KindDate, Attribute: name, Raw: v, Err: err}
	}
	return t, nil
}

// OptionalFloat returns the named attribute parsed as a float, or nil
// when the attribute is absent or not numeric. Used for fields like
// proficiency scores which are legitimately empty on most elements.
func (a Attrs) OptionalFloat(name string) *float64 {
	f, err := strconv.ParseFloat(a[name], 64)
	if err != nil {
		return nil
	}
	return &f
}
