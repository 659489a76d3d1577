package spellcatalog

import (
	"github.com/gostonefire/spellcatalog/internal/model"
	"github.com/gostonefire/spellcatalog/spell"
)

// Put - Adds a spell to the first free slot of its probe sequence. A stored spell is never updated.
//   - s is the spell to add
//
// It returns:
//   - probes is the probe iteration where the spell was placed (0 for its home slot), or the capacity when the
//     probe sequence was exhausted
//   - err is nil on success, crt.DuplicateKey if the home slot holds a spell with the same name and the probed slot
//     is occupied, or crt.TableFull if no free slot was found
func (S *SpellTable) Put(s spell.Simple) (probes int64, err error) {
	probes, err = S.storage.Insert(model.Record{Name: s.Name, Words: s.Words})

	return
}

// GetWords - Gets the cast words of the spell with the given name.
//   - name is the name of the spell
//
// It returns:
//   - words is the cast words of the spell if found, if not found an error of type crt.NoRecordFound is also returned.
//   - probes is the probe iteration where the search ended
//   - err is either of type crt.NoRecordFound or nil
func (S *SpellTable) GetWords(name string) (words string, probes int64, err error) {
	record, probes, err := S.storage.Get(name)
	if err != nil {
		return
	}

	words = record.Words

	return
}

// Stat - Walks through the entire set of slots and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with the number of records placed
//     at each probe iteration, false will set TableStat.ProbeDistribution to nil.
func (S *SpellTable) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	var record model.Record
	ts := TableStat{Capacity: S.capacity}

	if includeDistribution {
		ts.ProbeDistribution = make([]int64, S.capacity)
	}

	// Iterate over every available slot
	for i := int64(0); i < S.capacity; i++ {
		record, err = S.storage.GetSlot(i)
		if err != nil {
			return
		}

		if record.State == model.RecordOccupied {
			ts.Records++
			if includeDistribution {
				ts.ProbeDistribution[record.Probes]++
			}
		}
	}

	ts.LoadFactor = float64(ts.Records) / float64(ts.Capacity)
	tableStat = &ts

	return
}
