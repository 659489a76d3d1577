package spellcatalog

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/hashfunc"
	"github.com/gostonefire/spellcatalog/internal/model"
	"github.com/gostonefire/spellcatalog/internal/storage/openaddressing"
)

// TableStorage - Interface for any in memory slot storage implementation backing a SpellTable
type TableStorage interface {
	Get(key string) (record model.Record, probes int64, err error)
	Insert(record model.Record) (probes int64, err error)
	GetSlot(slotNo int64) (record model.Record, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// TableInfo - Information structure containing some information about the spell table created
//   - CapacityNeeded is the capacity asked for in the call to NewSpellTable
//   - Capacity is the actual number of slots, the hash algorithm may have rounded CapacityNeeded up
//   - CollisionResolutionTechnique is one of the crt technique constants
//   - InternalAlgorithm is true when no custom hash algorithm was supplied
type TableInfo struct {
	CapacityNeeded               int64
	Capacity                     int64
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// TableStat - Statistics on the overall usage of the spell table
//   - Records is the total number of records stored
//   - Capacity is the number of slots in the table
//   - LoadFactor is Records divided by Capacity
//   - ProbeDistribution counts records by how many probe iterations it took to place them, index 0 being the home slot
type TableStat struct {
	Records           int64
	Capacity          int64
	LoadFactor        float64
	ProbeDistribution []int64
}

// SpellTable - A fixed capacity table mapping spell names to cast words using open addressing
type SpellTable struct {
	storage  TableStorage
	capacity int64
}

// NewSpellTable - Returns a new spell table with a fixed number of slots. The table never grows, once all slots
// are occupied every Put fails with crt.TableFull.
//   - capacity is the number of slots, it must be at least 3 since the second hash function reduces by capacity - 2
//   - collisionResolutionTechnique is one of crt.DoubleHashing, crt.LinearProbing or crt.QuadraticProbing
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - spellTable is a pointer to a SpellTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewSpellTable(
	capacity int64,
	collisionResolutionTechnique int,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	spellTable *SpellTable,
	tableInfo TableInfo,
	err error,
) {
	// Check if capacity is valid
	if capacity < 3 {
		err = fmt.Errorf("capacity must be at least 3, got %d", capacity)
		return
	}

	crtConf := model.CRTConf{
		CapacityNeeded:               capacity,
		CollisionResolutionTechnique: collisionResolutionTechnique,
		HashAlgorithm:                hashAlgorithm,
	}

	var storage TableStorage
	storage, err = openaddressing.NewOATable(crtConf)
	if err != nil {
		return
	}

	sp := storage.GetStorageParameters()

	// Prepare return data
	spellTable = &SpellTable{
		storage:  storage,
		capacity: sp.CapacityAvailable,
	}

	tableInfo = TableInfo{
		CapacityNeeded:               sp.CapacityNeeded,
		Capacity:                     sp.CapacityAvailable,
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

// Capacity - Returns the number of slots in the table
func (S *SpellTable) Capacity() int64 {
	return S.capacity
}

// Size - Returns the number of spells stored in the table
func (S *SpellTable) Size() int64 {
	return S.storage.GetStorageParameters().NumberOfOccupiedRecords
}
