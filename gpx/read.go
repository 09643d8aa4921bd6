package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ParseError reports XML well-formedness violations, one message per
// violation. It is the only error Read returns; a document that parses is
// never partially populated.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// Read parses a GPX document from r. It returns a *ParseError when the
// input is not well-formed XML; any structurally valid document is returned
// as-is, with no normalization or whitespace trimming.
func Read(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Messages: []string{err.Error()}}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, &ParseError{Messages: []string{"unexpected second root element <" + t.Name.Local + ">"}}
			}
			el := &Element{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				el.Attrs = make([]Attr, 0, len(t.Attr))
				for _, a := range t.Attr {
					el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
				}
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.Text += string(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				// The decoder hands out text before or after the root
				// without complaint; only whitespace is legal there.
				return nil, &ParseError{Messages: []string{"text outside root element"}}
			}

		case xml.EndElement:
			// The decoder guarantees matched tags in strict mode.
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, &ParseError{Messages: []string{"no root element"}}
	}
	return &Document{Root: root}, nil
}

// ReadString parses a GPX document held in a string.
func ReadString(s string) (*Document, error) {
	return Read(strings.NewReader(s))
}
