package dataset

import "errors"

// Sentinel errors for the three ways a dataset operation can fail.
// Returned errors wrap one of these; test with errors.Is.
var (
	// ErrRead means the dataset file is missing or unreadable.
	ErrRead = errors.New("read dataset")
	// ErrParse means the file content is not a JSON object, or a field an
	// operation depends on has the wrong shape.
	ErrParse = errors.New("parse dataset")
	// ErrWrite means the dataset could not be written back.
	ErrWrite = errors.New("write dataset")
)
