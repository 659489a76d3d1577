package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/spellcatalog/internal/utils"
)

// XXHashAlgorithm - A double hashing slot selection algorithm built on one 64 bit xxhash of the key. The low
// 32 bits select the slot and the high 32 bits select the probing step, so a single hash pass serves both.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, rounded up to the nearest prime number
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key string) int64 {
	h := xxhash.Sum64String(key) & 0xffffffff
	return int64(h % uint64(X.tableSize))
}

// HashFunc2 - Given key it generates a probing step between 1 and table size - 1
func (X *XXHashAlgorithm) HashFunc2(key string) int64 {
	h := xxhash.Sum64String(key) >> 32
	return 1 + int64(h%uint64(X.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// ProbeIteration - Implements Double Hashing
func (X *XXHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % X.tableSize
}
