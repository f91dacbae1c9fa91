package domain

import "fmt"

// LoadError reports a transport failure, a non-success status or a payload
// that does not parse as a list of job records.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load jobs %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError means the collection loaded fine but holds no record with ID.
// Raw carries the unparsed navigation parameter when the id was not numeric.
type NotFoundError struct {
	ID  int
	Raw string
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("job %q not found", e.Raw)
	}
	return fmt.Sprintf("job %d not found", e.ID)
}
