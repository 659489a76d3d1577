package hash

import (
	"github.com/gostonefire/spellcatalog/internal/utils"
	"hash/crc32"
)

// QuadraticProbingHashAlgorithm - A slot selection algorithm implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying slot = hash & (actualTableSize - 1) to get the slot number,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size. Probing uses triangular
// numbers, which visit every slot of a power of 2 sized table.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(tableSize int64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key string) int64 {
	h := int64(crc32.ChecksumIEEE([]byte(key)))
	return h & (Q.tableSize - 1)
}

// HashFunc2 - Not used in quadratic probing collision resolution techniques, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(key string) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + ((iteration*iteration + iteration) / 2)) & (Q.tableSize - 1)
}
