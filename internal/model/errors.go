package model

import "errors"

// ErrInvalidInput is returned at the matcher and claim-extractor boundary when
// the input is not valid UTF-8 text. Callers must not swallow it as an empty
// result; empty or whitespace-only input is the defined empty case instead.
var ErrInvalidInput = errors.New("invalid input: not valid UTF-8 text")
