package reminder

import (
	"fmt"
	"strings"
)

// ConfigError signals that required engine configuration is missing.
// The run is aborted before any store query.
type ConfigError struct {
	Missing []string
}

func (e ConfigError) Error() string {
	return "reminder engine misconfigured; missing: " + strings.Join(e.Missing, ", ")
}

// StoreError signals that a store query failed. An event-store failure
// aborts the whole run; a member-store failure is scoped to one event.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("store query failed (%s): %v", e.Op, e.Err)
}

func (e StoreError) Unwrap() error {
	return e.Err
}
