package events

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Tokenize reads a markup document from r and returns its event
// sequence. Character data containing only whitespace becomes a
// Whitespace event, any other character data a Text event. Comments,
// directives and processing instructions carry no payload data and are
// dropped. Namespace prefixes are discarded; the portal payload does not
// use namespaces.
func Tokenize(r io.Reader) ([]Event, error) {
	dec := xml.NewDecoder(r)
	var seq []Event
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return seq, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "tokenize")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attr := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attr = append(attr, Attr{Name: a.Name.Local, Value: a.Value})
			}
			seq = append(seq, Start{Name: t.Name.Local, Attr: attr})
		case xml.EndElement:
			seq = append(seq, End{Name: t.Name.Local})
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				seq = append(seq, Whitespace{Value: string(t)})
			} else {
				seq = append(seq, Text{Value: string(t)})
			}
		}
	}
}
