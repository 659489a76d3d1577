package hash

import (
	"github.com/gostonefire/spellcatalog/internal/utils"
	"hash/crc32"
)

// DoubleHashAlgorithm - A slot selection algorithm implemented using crc32.ChecksumIEEE to create a hash value
// over the key and then applying HashFunc1 and HashFunc2 as primary respective probing functions.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows the algorithm to
// iterate over the entirety of the table slots once and only once.
//   - tableSize is the number of slots the table will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int64 {
	k := int64(crc32.ChecksumIEEE([]byte(key)))
	return k % D.tableSize
}

// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from HashFunc1 in
// a call to ProbeIteration.
func (D *DoubleHashAlgorithm) HashFunc2(key string) int64 {
	k := int64(crc32.ChecksumIEEE([]byte(key)))

	return 1 + ((k / D.tableSize) % (D.tableSize - 1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
