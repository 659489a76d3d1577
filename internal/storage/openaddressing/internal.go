package openaddressing

import (
	"github.com/gostonefire/spellcatalog/crt"
	"github.com/gostonefire/spellcatalog/internal/model"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
// An empty slot ends the search since records are never deleted, so a stored key always sits before the
// first empty slot of its probe sequence.
func (Q *OATable) probingForGet(key string) (record model.Record, probes int64, err error) {
	var probe int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	for i := int64(0); i < Q.capacityAvailable; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		probes = i
		if probe < 0 || probe >= Q.capacityAvailable {
			continue
		}

		switch Q.slots[probe].State {
		case model.RecordEmpty:
			err = crt.NoRecordFound{}
			return

		case model.RecordOccupied:
			if Q.slots[probe].Name == key {
				record = Q.slots[probe]
				return
			}
		}
	}

	probes = Q.capacityAvailable
	err = crt.NoRecordFound{}
	return
}

// probingForInsert - Is the Probing Collision Resolution Technique algorithm for finding a free slot.
// The key is compared against the home slot occupant only, and only after a probed slot turned out to be
// occupied. A free slot found first takes the record even if the home slot holds the same key, and a record with
// the same key placed further down the probe sequence is never detected.
func (Q *OATable) probingForInsert(key string) (slotNo int64, probes int64, err error) {
	var probe int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	if hf1Value < 0 || hf1Value >= Q.capacityAvailable {
		err = crt.ProbingAlgorithm{}
		return
	}

	home := Q.slots[hf1Value]
	if home.State == model.RecordEmpty {
		slotNo = hf1Value
		return
	}

	for i := int64(1); i < Q.capacityAvailable; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		probes = i
		if probe < 0 || probe >= Q.capacityAvailable {
			continue
		}

		if Q.slots[probe].State == model.RecordEmpty {
			slotNo = probe
			return
		}

		if home.Name == key {
			err = crt.DuplicateKey{}
			return
		}
	}

	probes = Q.capacityAvailable
	err = crt.TableFull{}
	return
}
