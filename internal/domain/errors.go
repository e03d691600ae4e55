package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist,
	// locally or at the delivery gateway.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a create collides with an existing
	// remote resource.
	ErrConflict = errors.New("resource already exists")

	// ErrUnauthenticated is returned when a caller identity is missing
	// or malformed.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUpstreamFailure is returned when the delivery gateway fails
	// after retries are exhausted.
	ErrUpstreamFailure = errors.New("upstream gateway failure")

	// ErrDataIntegrity is returned when the tenant directory resolves a
	// project to more than one application. The directory guarantees at
	// most one; hitting this means the data is corrupt.
	ErrDataIntegrity = errors.New("project maps to multiple applications")

	// ErrNoSubscribers is returned when a broadcast finds no tenant
	// application for the project. Expected for projects without
	// webhooks; a NotFound condition, not a failure.
	ErrNoSubscribers = fmt.Errorf("no application subscribed to project: %w", ErrNotFound)

	// ErrUnknownTopic is returned for stream records on topics the
	// router does not consume.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrInvalidEventKind is returned for filter-type strings outside
	// the canonical catalog.
	ErrInvalidEventKind = errors.New("invalid event kind")

	// ErrMissingStatus is returned when an NFT record omits its
	// creation status.
	ErrMissingStatus = errors.New("missing creation status")
)
