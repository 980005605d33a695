package symtab

import "errors"

var (
	// ErrStringOverflow means the pool already holds MaxStrings strings.
	ErrStringOverflow = errors.New("string pool: number of strings exhausted")
	// ErrHashOverflow means no free slot remains for a collision chain.
	ErrHashOverflow = errors.New("hash table: size exhausted")

	// ErrDoesntExist refers to a string number that has not been created.
	ErrDoesntExist = errors.New("string number doesn't exist")
	// ErrInvalid refers to a string number at or past MaxStrings.
	ErrInvalid = errors.New("invalid string number")
)

// IsFatal reports whether err is a resource exhaustion that ends the run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStringOverflow) || errors.Is(err, ErrHashOverflow)
}
