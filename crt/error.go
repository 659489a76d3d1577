package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the spell table is full, or that the probe sequence for a key was
// exhausted without finding an empty slot
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm returned slot out of range"
	}
	return P.msg
}

// DuplicateKey - Custom error to inform that a record with the same key is already stored
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key already exists
func (D DuplicateKey) Error() string {
	if D.msg == "" {
		return "duplicate key"
	}
	return D.msg
}

// CategoryMismatch - Custom error to inform that a spell was handed to a tree of another category
type CategoryMismatch struct {
	msg string
}

// Error - Used to notify a category mismatch
func (C CategoryMismatch) Error() string {
	if C.msg == "" {
		return "category mismatch"
	}
	return C.msg
}
