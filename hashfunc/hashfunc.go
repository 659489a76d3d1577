package hashfunc

// HashAlgorithm - Interface that permits a user of the SpellTable to supply a custom slot
// selection algorithm suited for its particular distribution of spell names.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a spell table with a custom algorithm. Hence, if the instance is already
	// having a table size, it will be overwritten by the capacity that was supplied when creating the table.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) is skipped by the probing loop.
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from
	// HashFunc1 in a call to ProbeIteration. Algorithms that do not need a second hash return a dummy value.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	// It is very important that this function return the actual table size and not just the table size given in
	// the call to SetTableSize. Some algorithms round up to nearest 2 to the power of x, or to the nearest prime,
	// and the spell table allocates exactly GetTableSize slots.
	GetTableSize() int64

	// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
	// Iteration 0 must return hf1Value. Since this function will be called repeatedly in a collision resolution
	// situation, and the actual hash values are the same throughout iterations for one key, the function takes
	// those values rather than the key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
