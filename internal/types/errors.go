package types

import "fmt"

// InvalidIdentifierError reports input that is neither "CHEBI:<digits>"
// nor a bare digit sequence.
type InvalidIdentifierError struct {
	Input string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid ChEBI ID: %q", e.Input)
}

// RemoteServiceError reports a failed lookup. Status is zero when the
// request never produced a response.
type RemoteServiceError struct {
	Status int
	URL    string
	Err    error
}

func (e *RemoteServiceError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed url=%s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("status=%d url=%s", e.Status, e.URL)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response url=%s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
