package curv

import "fmt"

// InputError reports which element of a hex-encoded input list was rejected.
type InputError struct {
	Index  int
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curv: input %d: %s: %v", e.Index, e.Reason, e.Err)
	}
	return fmt.Sprintf("curv: input %d: %s", e.Index, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// newInputError creates a new InputError.
func newInputError(index int, reason string, err error) *InputError {
	return &InputError{
		Index:  index,
		Reason: reason,
		Err:    err,
	}
}
