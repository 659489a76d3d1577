package model

import "github.com/gostonefire/spellcatalog/hashfunc"

// RecordEmpty - State indicating a slot that has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a slot that is in use
const RecordOccupied uint8 = 1

// Record - Represents one slot in the spell table
//   - State is either RecordEmpty or RecordOccupied, there are no tombstones since nothing is ever deleted
//   - SlotNo is the index of the slot within the table
//   - Probes is the probe iteration at which the record was placed, 0 meaning its home slot
type Record struct {
	State  uint8
	SlotNo int64
	Probes int64
	Name   string
	Words  string
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	CapacityNeeded               int64
	CapacityAvailable            int64
	NumberOfOccupiedRecords      int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - CapacityNeeded is the number of slots asked for, the hash algorithm may round it up
//   - CollisionResolutionTechnique is one of the crt technique constants
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal one for the technique
type CRTConf struct {
	CapacityNeeded               int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
}
