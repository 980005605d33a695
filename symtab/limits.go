package symtab

import "fmt"

// HashBase is the lowest slot a hash value maps to. Slots below it are
// never chain heads.
const HashBase = 1

const (
	DefaultPoolSize   = 65000
	DefaultMaxStrings = 35307
	DefaultSlack      = 3
	minHashSize       = 5000
)

// Limits sizes a pool and its hash table.
type Limits struct {
	// PoolSize is the initial byte capacity and the growth increment.
	PoolSize int
	// MaxStrings bounds the number of string numbers, counting the unused 0.
	MaxStrings int
	// HashSize is the number of usable slots.
	HashSize int
	// Slack widens the "not yet created" window of StringPool.TryGet past
	// the next string number.
	Slack int
}

// DefaultLimits returns the stock capacities.
func DefaultLimits() Limits {
	return Limits{
		PoolSize:   DefaultPoolSize,
		MaxStrings: DefaultMaxStrings,
		HashSize:   DefaultHashSize(DefaultMaxStrings),
		Slack:      DefaultSlack,
	}
}

// DefaultHashSize sizes the table to hold every string, with a floor.
func DefaultHashSize(maxStrings int) int {
	return max(maxStrings, minHashSize)
}

// Validate checks that the limits can back a working table.
func (l Limits) Validate() error {
	switch {
	case l.PoolSize <= 0:
		return fmt.Errorf("pool size must be positive, got %d", l.PoolSize)
	case l.MaxStrings < 2:
		return fmt.Errorf("max strings must be at least 2, got %d", l.MaxStrings)
	case l.HashSize < 2:
		return fmt.Errorf("hash size must be at least 2, got %d", l.HashSize)
	case l.Slack < 0:
		return fmt.Errorf("slack must not be negative, got %d", l.Slack)
	}
	return nil
}

// HashPrime returns the first prime at or above size/20*17, about 85% of
// size. If that prime would not fit in the table it falls back to the
// largest prime not above size.
func HashPrime(size int) int {
	for n := max(size/20*17, 2); n <= size; n++ {
		if isPrime(n) {
			return n
		}
	}
	for n := size; n >= 2; n-- {
		if isPrime(n) {
			return n
		}
	}
	return 1
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
