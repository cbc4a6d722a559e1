package db

import "errors"

// Sentinel errors returned by repo operations. Controllers match these with
// errors.Is to pick the HTTP status; anything else is a storage failure.
var (
	// ErrBookNotFound is returned when a book id does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookUnavailable is returned on checkout when the book is unknown
	// or has no free copies.
	ErrBookUnavailable = errors.New("book not available")

	// ErrBookHasActiveLoans blocks deleting a book with an open loan.
	ErrBookHasActiveLoans = errors.New("book has active loans")

	// ErrQuantityBelowLoaned blocks shrinking quantity below the number of
	// copies currently on loan.
	ErrQuantityBelowLoaned = errors.New("quantity below loaned amount")

	// ErrLoanNotFound is returned when a loan id does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrLoanAlreadyReturned is returned on a second return of the same loan.
	ErrLoanAlreadyReturned = errors.New("loan already returned")
)
