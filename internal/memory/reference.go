package memory

// Reference is a non-owning (bank, index) pair naming a single memory cell.
// It is the abstraction the Mmu hands back from each addressing mode, and
// the only type instruction handlers use to touch memory — they never see
// a Bank or a raw address directly. References are value types created
// fresh per instruction; there is nothing to release.
type Reference[W Word] struct {
	bank  Bank[W]
	index int
}

// NewReference creates a Reference into bank at index.
func NewReference[W Word](bank Bank[W], index int) Reference[W] {
	return Reference[W]{bank: bank, index: index}
}

// Read returns the value at the referenced location.
func (r Reference[W]) Read() W {
	return r.bank.Read(r.index)
}

// ReadAt returns the value at the referenced location plus offset.
func (r Reference[W]) ReadAt(offset int) W {
	return r.bank.Read(r.index + offset)
}

// Write stores data at the referenced location.
func (r Reference[W]) Write(data W) error {
	return r.bank.Write(r.index, data)
}

// WriteAt stores data at the referenced location plus offset.
func (r Reference[W]) WriteAt(offset int, data W) error {
	return r.bank.Write(r.index+offset, data)
}

// Advance moves the reference forward by one word.
func (r *Reference[W]) Advance() {
	r.index++
}

// Retreat moves the reference backward by one word.
func (r *Reference[W]) Retreat() {
	r.index--
}
