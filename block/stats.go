package block

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Kind identifies the active physical representation of a Block.
type Kind byte

const (
	KindSeq16 Kind = iota
	KindSeq64
	KindRle16
)

func (k Kind) String() string {
	switch k {
	case KindSeq16:
		return "seq16"
	case KindSeq64:
		return "seq64"
	case KindRle16:
		return "rle16"
	}
	return fmt.Sprintf("%#x", byte(k))
}

// Stats describes a Block for reporting: the active representation, the
// number of members, and the approximate footprint in bytes.
type Stats struct {
	Kind Kind
	Ones uint64
	Size int
}

// Stats returns the current Stats of the Block.
func (b *Block) Stats() Stats {
	return Stats{
		Kind: b.kind,
		Ones: uint64(b.CountOnes()),
		Size: b.MemSize(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%s ones=%d size=%s", s.Kind, s.Ones, humanize.IBytes(uint64(s.Size)))
}
