package gm

import (
	"reflect"
)

// UnknownUnit is the unit tag used when a value does not belong to any
// particular coordinate space.
type UnknownUnit struct{}

func unitName[U any]() string {
	name := reflect.TypeFor[U]().Name()
	if name == "" {
		return reflect.TypeFor[U]().String()
	}

	return name
}
