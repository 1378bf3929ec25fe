package sink

import (
	"context"
	"dgramlog/pkg/protocol"
	"errors"
	"reflect"
)

// Creates fan-out sink. Nil sinks (disabled outputs) are skipped.
func NewMulti(sinks ...Sink) (new *Multi) {
	new = &Multi{}
	for _, sink := range sinks {
		if isNil(sink) {
			continue
		}
		new.sinks = append(new.sinks, sink)
	}
	return
}

// Writes to every sink; a failing sink does not stop delivery to the rest
func (multi *Multi) Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error) {
	var errs []error
	for _, sink := range multi.sinks {
		writeErr := sink.Write(ctx, level, msg)
		if writeErr != nil {
			errs = append(errs, writeErr)
		}
	}
	err = errors.Join(errs...)
	return
}

// Shuts down every sink
func (multi *Multi) Shutdown() (err error) {
	var errs []error
	for _, sink := range multi.sinks {
		shutdownErr := sink.Shutdown()
		if shutdownErr != nil {
			errs = append(errs, shutdownErr)
		}
	}
	err = errors.Join(errs...)
	return
}

// Number of active sinks
func (multi *Multi) Len() (count int) {
	count = len(multi.sinks)
	return
}

// Output constructors return typed nil pointers when disabled
func isNil(sink Sink) (null bool) {
	if sink == nil {
		null = true
		return
	}
	value := reflect.ValueOf(sink)
	null = value.Kind() == reflect.Pointer && value.IsNil()
	return
}
