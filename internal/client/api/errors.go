package api

import "fmt"

// FetchError reports a non-success HTTP status on a read operation.
type FetchError struct {
	Resource string
	Status   int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch failed: %d", e.Resource, e.Status)
}

// SubmissionError reports a rejected payment submission. Detail carries the
// server-provided text when the backend supplied any.
type SubmissionError struct {
	Status int
	Detail string
}

func (e *SubmissionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("payment submission failed: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("payment submission failed: %d", e.Status)
}
