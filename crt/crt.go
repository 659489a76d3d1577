package crt

import "fmt"

// Collision Resolution Techniques available for the spell table
const (
	// DoubleHashing - Probes with (h1 + i*h2) mod table size
	DoubleHashing = iota
	// LinearProbing - Probes with (h1 + i) mod table size
	LinearProbing
	// QuadraticProbing - Probes with (h1 + (i*i + i)/2) mod table size
	QuadraticProbing
)

// DuplicatePolicy - Decides what a category tree does when a spell with an already stored power level is inserted
type DuplicatePolicy int

const (
	// TieBreakByName - Spells are ordered by power level and then by name, so equal power levels become siblings.
	// Only an exact (power level, name) pair is rejected as a duplicate.
	TieBreakByName DuplicatePolicy = iota
	// RejectEqualPower - A spell with an already stored power level is rejected with DuplicateKey
	RejectEqualPower
	// OverwriteEqualPower - A spell with an already stored power level replaces the stored one
	OverwriteEqualPower
)

// String - Returns the configuration name of the policy
func (D DuplicatePolicy) String() string {
	switch D {
	case TieBreakByName:
		return "tiebreak"
	case RejectEqualPower:
		return "reject"
	case OverwriteEqualPower:
		return "overwrite"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(D))
}

// ParseDuplicatePolicy - Returns the policy matching a configuration name as returned by DuplicatePolicy.String
func ParseDuplicatePolicy(name string) (policy DuplicatePolicy, err error) {
	switch name {
	case "tiebreak", "":
		policy = TieBreakByName
	case "reject":
		policy = RejectEqualPower
	case "overwrite":
		policy = OverwriteEqualPower
	default:
		err = fmt.Errorf("unknown duplicate policy %q, expected tiebreak, reject or overwrite", name)
	}

	return
}
