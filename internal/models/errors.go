package models

import "errors"

var (
	ErrDuplicateTerm       = errors.New("term already exists")
	ErrDuplicateDefinition = errors.New("definition already exists")
	ErrNotFound            = errors.New("card not found")
	ErrEmptyStore          = errors.New("no cards in store")

	// ErrMalformedLine is returned for a card file line that is not term|definition|mistakes.
	ErrMalformedLine = errors.New("malformed card line")

	ErrInvalidCount = errors.New("invalid question count")
)
