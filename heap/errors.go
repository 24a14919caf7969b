package heap

import "errors"

// ErrEmpty indicates Pop or Peek was called on an empty heap.
var ErrEmpty = errors.New("heap: empty")
