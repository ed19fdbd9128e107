package convert

import "fmt"

// DocumentUnreadableError marks a document that could not be opened or
// parsed at all. No partial output is produced for such a document; a
// batch records the failure and moves on to the next input.
type DocumentUnreadableError struct {
	Name string
	Err  error
}

func (e *DocumentUnreadableError) Error() string {
	return fmt.Sprintf("document %s is unreadable: %v", e.Name, e.Err)
}

func (e *DocumentUnreadableError) Unwrap() error { return e.Err }
