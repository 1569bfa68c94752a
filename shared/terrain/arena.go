package terrain

// BlockID indexes a block in an Arena.
type BlockID int

// Arena owns every block of a map. Groups and collision results refer to blocks by ID.
type Arena struct {
	blocks []*Block
}

func NewArena() *Arena {
	return &Arena{}
}

// Add stores b and returns its ID.
func (a *Arena) Add(b *Block) BlockID {
	a.blocks = append(a.blocks, b)
	return BlockID(len(a.blocks) - 1)
}

// Get returns the block with the given ID, or nil if it is out of range.
func (a *Arena) Get(id BlockID) *Block {
	if id < 0 || int(id) >= len(a.blocks) {
		return nil
	}
	return a.blocks[id]
}

func (a *Arena) Len() int {
	return len(a.blocks)
}

// Tick advances every block's highlight countdown.
func (a *Arena) Tick() {
	for _, b := range a.blocks {
		b.Tick()
	}
}
