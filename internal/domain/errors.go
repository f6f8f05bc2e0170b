package domain

import "errors"

var (
	// ErrNotFound signals a missing single entity by key, e.g. an unknown
	// project slug. It is a designed terminal state, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrDomainNotVerified is the email collaborator's restriction on
	// unverified sending domains, common on free-tier accounts.
	ErrDomainNotVerified = errors.New("sending domain not verified")

	// ErrEmailRejected covers every other rejection the email collaborator
	// reports; the wrapped message carries the provider's reason.
	ErrEmailRejected = errors.New("email rejected")
)
