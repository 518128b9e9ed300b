package vec

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Stats contains a snapshot of a vector's storage usage.
type Stats struct {
	Len         int     // live elements
	Cap         int     // element capacity of the storage block
	LiveBytes   uint64  // bytes held by live elements
	CapBytes    uint64  // bytes held by the whole block
	Utilization float64 // ratio of live to total slots (0.0-1.0)
}

// Stats returns a snapshot of the vector's storage usage.
func (v *Vector[T]) Stats() Stats {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	s := Stats{Len: v.size, Cap: v.data.Capacity()}
	s.LiveBytes = uint64(s.Len) * elemSize
	s.CapBytes = uint64(s.Cap) * elemSize
	if s.Cap > 0 {
		s.Utilization = float64(s.Len) / float64(s.Cap)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("len %d/%d (%.1f%%), %s of %s",
		s.Len, s.Cap, s.Utilization*100,
		humanize.IBytes(s.LiveBytes), humanize.IBytes(s.CapBytes))
}
