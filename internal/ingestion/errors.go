package ingestion

import "fmt"

// InputError indicates the supplied document content cannot be ingested,
// for example because it is empty after cleaning.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// UnsupportedTypeError indicates a file extension the pipeline has no
// extractor for. Binary formats need text extraction upstream before they
// can be submitted.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (submit extracted plain text instead)", e.Extension)
}
