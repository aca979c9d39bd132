// ABOUTME: Sentinel errors for table construction and cell input
// ABOUTME: Callers match them with errors.Is; both are fatal input errors, never retried

package table

import "errors"

var (
	// ErrInvalidContentType reports cell content that is not a string,
	// number, bool, fmt.Stringer, or nil.
	ErrInvalidContentType = errors.New("invalid cell content type")

	// ErrInvalidConfiguration reports a table option or cell attribute out of
	// range: negative padding, non-positive max width, negative spans, or an
	// unknown alignment or truncation position.
	ErrInvalidConfiguration = errors.New("invalid table configuration")
)
