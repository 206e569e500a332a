package cache

import "github.com/pkg/errors"

// ErrNotFound is returned when a key misses in an in-process cache.
var ErrNotFound = errors.New("cache: key not found")
