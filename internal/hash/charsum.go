package hash

import "unicode/utf16"

// CharSumHashAlgorithm - The default slot selection algorithm of the spell table. Both hash functions sum the
// UTF-16 code units of the key multiplied by a constant (31 and 13) and reduce the sum with the table size:
//   - HashFunc1 = sum(c*31) mod tableSize
//   - HashFunc2 = 1 + (sum(c*13) mod (tableSize - 2))
//
// The table size is used as given, it is never rounded, so the probe sequence only covers every slot when the
// table size is a prime.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of slots the table will address, HashFunc2 requires it to be at least 3
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (C *CharSumHashAlgorithm) HashFunc1(key string) int64 {
	return charSum(key, 31) % C.tableSize
}

// HashFunc2 - Given key it generates a probing step between 1 and table size - 2
func (C *CharSumHashAlgorithm) HashFunc2(key string) int64 {
	if C.tableSize <= 2 {
		return 1
	}
	return 1 + charSum(key, 13)%(C.tableSize-2)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

// ProbeIteration - Implements Double Hashing
func (C *CharSumHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % C.tableSize
}

func charSum(key string, multiplier int64) (sum int64) {
	for _, c := range utf16.Encode([]rune(key)) {
		sum += int64(c) * multiplier
	}

	return
}
