package services

import "errors"

var (
	// ErrNotFound is returned when a username, menu or restaurant lookup misses.
	ErrNotFound = errors.New("record not found")

	// ErrOwnerHasRestaurant is the conflict surfaced by the unique owner index.
	ErrOwnerHasRestaurant = errors.New("owner already has a restaurant")

	// ErrNoVotesToday means the arbiter ran with an empty tally.
	ErrNoVotesToday = errors.New("no votes recorded today")

	// ErrNoRunnerUp means suppression triggered with fewer than two tallied entries.
	ErrNoRunnerUp = errors.New("no runner-up available to promote")
)
