package styles

import "fmt"

// ContractError reports caller-supplied input that violates the
// serializer's preconditions: a color index outside the palette, or a
// font script value it does not know. The serializer never papers over
// these, since other parts of the package depend on the indices being
// exactly right.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "styles: " + e.Reason
}

// SinkError wraps a write failure reported by the Sink. Emission is
// not idempotent mid-document, so the first failure aborts the whole
// serialization.
type SinkError struct {
	Element string
	Err     error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("styles: writing %s: %v", e.Element, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
