package openaddressing

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/hashfunc"
	"github.com/gostonefire/spellcatalog/internal/hash"
	"github.com/gostonefire/spellcatalog/internal/model"
)

// OATable - Represents an in memory implementation of the Open Addressing Collision Resolution Techniques.
// It uses one fixed array of slots where each slot holds one record. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the record.
// Once all free slots are occupied the table will accept no more records. The table never grows.
type OATable struct {
	slots                        []model.Record
	capacityNeeded               int64
	capacityAvailable            int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nOccupied                    int64
}

// NewOATable - Returns a pointer to a new instance of the Open Addressing table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		switch crtConf.CollisionResolutionTechnique {
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewCharSumHashAlgorithm(crtConf.CapacityNeeded)
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.CapacityNeeded)
		case crt.QuadraticProbing:
			crtConf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm(crtConf.CapacityNeeded)
		default:
			err = fmt.Errorf("unknown collision resolution technique %d", crtConf.CollisionResolutionTechnique)
			return
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.CapacityNeeded)
	}

	capacity := crtConf.HashAlgorithm.GetTableSize()
	if capacity < crtConf.CapacityNeeded {
		err = fmt.Errorf("hash algorithm table size %d is less than the needed capacity %d", capacity, crtConf.CapacityNeeded)
		return
	}

	oaTable = &OATable{
		slots:                        make([]model.Record, capacity),
		capacityNeeded:               crtConf.CapacityNeeded,
		capacityAvailable:            capacity,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
	}

	for i := range oaTable.slots {
		oaTable.slots[i].SlotNo = int64(i)
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		CapacityNeeded:               Q.capacityNeeded,
		CapacityAvailable:            Q.capacityAvailable,
		NumberOfOccupiedRecords:      Q.nOccupied,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetSlot - Returns the record held by a slot given the slot number
//   - slotNo is the index of a slot, between 0 and capacity - 1
//
// It returns:
//   - record is a model.Record struct, with State set to model.RecordEmpty if the slot is unused
//   - err is a standard error if slotNo is out of range
func (Q *OATable) GetSlot(slotNo int64) (record model.Record, err error) {
	if slotNo < 0 || slotNo >= Q.capacityAvailable {
		err = fmt.Errorf("slot number %d out of range [0, %d)", slotNo, Q.capacityAvailable)
		return
	}

	record = Q.slots[slotNo]

	return
}

// Get - Gets the record that corresponds to the given key.
//   - key is the name of a spell
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - probes is the probe iteration where the search ended, 0 meaning the home slot, capacity meaning exhausted
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm
func (Q *OATable) Get(key string) (record model.Record, probes int64, err error) {
	record, probes, err = Q.probingForGet(key)

	return
}

// Insert - Adds a record to the first free slot of the key's probe sequence.
// Records are never updated. When the first occupied probed slot is met while the home slot holds the same key,
// the insert fails with crt.DuplicateKey.
//   - record is the record to insert, it needs only to contain Name and Words
//
// It returns:
//   - probes is the probe iteration where the record was placed, or the capacity if the sequence was exhausted
//   - err is either of type crt.DuplicateKey, crt.TableFull or crt.ProbingAlgorithm
func (Q *OATable) Insert(record model.Record) (probes int64, err error) {
	var slotNo int64
	slotNo, probes, err = Q.probingForInsert(record.Name)
	if err != nil {
		return
	}

	Q.slots[slotNo] = model.Record{
		State:  model.RecordOccupied,
		SlotNo: slotNo,
		Probes: probes,
		Name:   record.Name,
		Words:  record.Words,
	}
	Q.nOccupied++

	return
}

// Size - Returns the number of occupied slots
func (Q *OATable) Size() int64 {
	return Q.nOccupied
}
