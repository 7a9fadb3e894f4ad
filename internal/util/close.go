package util

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// Close closes closer and wraps a failure with name. Nil closers, including
// typed nil pointers, are ignored.
func Close(closer io.Closer, name string) error {
	if closer == nil {
		return nil
	}
	if val := reflect.ValueOf(closer); val.Kind() == reflect.Ptr && val.IsNil() {
		return nil
	}
	if err := closer.Close(); err != nil {
		if name == "" {
			name = "resource"
		}
		return errors.Wrapf(err, "close %s", name)
	}
	return nil
}

// CloseWithErr is Close for deferred calls: the error is logged as a warning.
func CloseWithErr(closer io.Closer, name string) {
	if err := Close(closer, name); err != nil {
		Warnf("%v", err)
	}
}
