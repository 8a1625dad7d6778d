// Package ui defines the widget-binding layer for simview.
//
// The package is deliberately abstract: it knows about elements, documents,
// option targets, and event slots, but not about how any of them render.
// Concrete terminal controls live in the widget package; tests can swap in
// fakes implementing the same surface.
//
//   - [Element]: a single addressable control, classified by [Kind]
//   - [Document]: element lookup, label creation, adjacent insertion
//   - [Target]: a component's declared set of properties and event slots
//   - [Bind]: wire a control to an initial value and change callback
//   - [SetOptions]: apply a name -> value/handler mapping to a Target
//
// All configuration failures wrap [ErrPrecondition]; there is no recovery
// or retry anywhere in this layer.
package ui
