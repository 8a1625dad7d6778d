package ui

// Kind classifies a control by its native input behavior.
type Kind int

const (
	KindText Kind = iota
	KindCheckbox
	KindRange
	KindSelect
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCheckbox:
		return "checkbox"
	case KindRange:
		return "range"
	case KindSelect:
		return "select"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Element is a single addressable UI control. Value returns the
// kind-appropriate current value: bool for checkboxes, float64 for range
// controls, int (selected index) for selects, string for text.
type Element interface {
	ID() string
	Kind() Kind
	Value() any
	SetValue(v any) error
	// Input fires after every user edit, carrying the new value.
	Input() *Event
}

// Label is an element that displays bound text, such as the live value
// readout inserted after range controls.
type Label interface {
	Element
	Text() string
	SetText(s string)
}

// Document is the minimal surface the binding layer needs from a widget
// host: lookup by id and selector, label creation, adjacent insertion.
type Document interface {
	ElementByID(id string) Element
	Query(selector string) Element
	CreateLabel(id string) Label
	InsertAfter(ref, el Element)
}
