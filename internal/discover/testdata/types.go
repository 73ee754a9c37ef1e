// Package testdata holds types exercised by the discover tests.
package testdata

// Widget is a plain named type.
type Widget struct {
	Name string
}

// Holder is a generic type.
type Holder[T any] struct {
	Value T
}

// WidgetHolder pins Holder's parameter.
type WidgetHolder struct {
	Holder[Widget]
}

type hidden struct{}

var _ = hidden{}
