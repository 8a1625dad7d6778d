package ui

import "fmt"

// GetElement resolves selector to a single element in doc. A string is run
// as a document query; an Element passes through unchanged. Anything else,
// or a query with no match, is a precondition violation.
func GetElement(doc Document, selector any) (Element, error) {
	switch s := selector.(type) {
	case string:
		el := doc.Query(s)
		if el == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchElement, s)
		}
		return el, nil
	case Element:
		if s == nil {
			return nil, fmt.Errorf("%w: nil element handle", ErrNoSuchElement)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: selector %T is neither a query nor an element", ErrPrecondition, selector)
	}
}
