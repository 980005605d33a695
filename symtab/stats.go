package symtab

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats summarizes pool and table occupancy.
type Stats struct {
	Strings      int
	MaxStrings   int
	PoolBytes    int
	PoolCapacity int
	Slots        int
	HashSize     int
	Overflow     int
}

// CollectStats reads the counters of p and h.
func CollectStats(p *StringPool, h *HashTable) Stats {
	return Stats{
		Strings:      p.Len(),
		MaxStrings:   p.limits.MaxStrings,
		PoolBytes:    p.PoolPtr(),
		PoolCapacity: p.Capacity(),
		Slots:        len(h.Occupied()),
		HashSize:     h.Size(),
		Overflow:     int(h.Max()) + 1 - int(h.Used()),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%s/%s strings, %s of %s pool, %s/%s slots (%d chained)",
		humanize.Comma(int64(s.Strings)), humanize.Comma(int64(s.MaxStrings)),
		humanize.Bytes(uint64(s.PoolBytes)), humanize.Bytes(uint64(s.PoolCapacity)),
		humanize.Comma(int64(s.Slots)), humanize.Comma(int64(s.HashSize)),
		s.Overflow)
}
