package types

import (
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by stores when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// SourceError wraps a failure inside a single scraper. The aggregator
// recovers these locally: a failed source contributes an empty result and
// never aborts the fan-out.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// StoreError wraps snapshot persistence failures. Unlike source failures
// these are fatal for the request; there is no fallback data source.
type StoreError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s %s): %v", e.Backend, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
