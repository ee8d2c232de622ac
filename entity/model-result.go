package entity

// ModelState tags the outcome of one language-model call.
type ModelState int

const (
	ModelSuccess ModelState = iota
	// ModelUnavailable means no credential is configured, no call was made.
	ModelUnavailable
	ModelError
)

// ModelResult is the tagged outcome consumed by the response composer.
// Anything other than ModelSuccess routes to the template fallback.
type ModelResult struct {
	State ModelState
	Text  string
	Err   error
}
