package jdate

import "errors"

// ErrInvalidDate indicates a Jalali month/day/year combination that is not a calendar date.
var ErrInvalidDate = errors.New("jdate: invalid jalali date")

// ErrWordOutOfRange indicates a word lookup with a value outside its table.
var ErrWordOutOfRange = errors.New("jdate: word value out of range")

// ErrUnknownWordKind indicates a word lookup for a kind the composer does not know.
var ErrUnknownWordKind = errors.New("jdate: unknown word kind")

// ErrTooManyFields is returned by MakeTime when more than six fields are supplied.
var ErrTooManyFields = errors.New("jdate: too many time fields")

// ErrNilLocation marks entry points called without a resolved timezone.
var ErrNilLocation = errors.New("jdate: nil location")

// ErrUnknownScript indicates a digit script name that cannot be parsed.
var ErrUnknownScript = errors.New("jdate: unknown script")
