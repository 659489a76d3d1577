package spell

import "fmt"

// Spell - Represents a spell stored in a category tree of the catalog.
//   - Name identifies the spell within its category together with PowerLevel
//   - Category selects which tree the spell is kept in
//   - PowerLevel is the ordering key within a category
//   - Words is what to say to cast the spell
type Spell struct {
	Name       string
	Category   string
	PowerLevel int
	Words      string
}

// String - Returns a human readable line describing the spell
func (S Spell) String() string {
	return fmt.Sprintf("%s (%s) - Power Level: %d, to cast say: %s", S.Name, S.Category, S.PowerLevel, S.Words)
}

// Simple - Represents a spell in the spell table, only name and cast words are kept
type Simple struct {
	Name  string
	Words string
}
