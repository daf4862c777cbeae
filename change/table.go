package change

// Table is a completed cost table. Slot i holds the minimum number of
// denominations summing to i, or Unreachable.
type Table struct {
	slots []Result
}

// Len returns the number of slots, target+1.
func (t *Table) Len() int {
	return len(t.slots)
}

// At returns slot i. It panics if i is out of range.
func (t *Table) At(i int) Result {
	return t.slots[i]
}

// Final returns the slot for the target the table was built for.
func (t *Table) Final() Result {
	return t.slots[len(t.slots)-1]
}
