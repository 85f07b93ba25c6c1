package detector

import "codeberg.org/miketth/hyprtint/pkg/hyprtint"

type EventListener interface {
	ReadLine() (string, error)
}

type LayoutResolver interface {
	LayoutForName(name string) (hyprtint.LayoutID, bool)
}

type Notifier interface {
	Notify(layout hyprtint.LayoutID) error
}
