package repositories

import "fmt"

// StoreError wraps any failure of the request log store. Write-path callers
// treat it as non-fatal; read-path callers surface it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("request log %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
