// Package gpx parses GPX documents into a navigable element tree.
//
// The tree is deliberately schema-agnostic: every element is kept with its
// tag name, attributes, children and text, so callers decide what the
// document means. Conversion to GeoJSON lives in the geojson package.
package gpx

// Document is a parsed GPX document, holding the single root element.
type Document struct {
	Root *Element
}

// Element is one node of the parsed tree. Names are namespace-local, so
// <gpxx:color> is seen as "color". Elements are not mutated after parsing.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

type Attr struct {
	Name  string
	Value string
}

// Attr returns the value of the named attribute, or the empty string when
// the attribute is absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the first direct child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the first descendant with the given name in document order,
// or nil. The receiver itself is not considered.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if m := c.Find(name); m != nil {
			return m
		}
	}
	return nil
}

// FindAll returns all descendants with the given name, in document order.
func (e *Element) FindAll(name string) []*Element {
	var found []*Element
	for _, c := range e.Children {
		if c.Name == name {
			found = append(found, c)
		}
		found = append(found, c.FindAll(name)...)
	}
	return found
}
