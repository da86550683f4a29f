// Package repository holds what the store adapters in its subpackages share.
package repository

import "errors"

// ErrNotFound is returned when a requested resource doesn't exist.
// This abstracts the driver's error so the service layer doesn't
// depend on store internals.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate")
