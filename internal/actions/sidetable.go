package actions

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

//go:generate mockgen -destination=mock/mock_sidetable.go -package=actionsmock github.com/edge-classic/EDGE-classic-sub008/internal/actions SideTable

// SideTable reports what the code pointer of a frame does.
type SideTable interface {
	Flags(frame int) Flag
	Attacks(frame int) Attacks
}

// FrameSource reads the current version of a frame.
type FrameSource interface {
	Frame(id int) (deh.Frame, bool)
}

type frameTable struct {
	frames FrameSource
}

var _ SideTable = (*frameTable)(nil)

// NewSideTable resolves frames through src, so pointer edits are seen.
func NewSideTable(src FrameSource) SideTable {
	return &frameTable{frames: src}
}

func (t *frameTable) info(frame int) (Info, bool) {
	f, ok := t.frames.Frame(frame)
	if !ok || f.Action == "" {
		return Info{}, false
	}
	return Lookup(f.Action)
}

func (t *frameTable) Flags(frame int) Flag {
	info, _ := t.info(frame)
	return info.Flags
}

func (t *frameTable) Attacks(frame int) Attacks {
	info, _ := t.info(frame)
	return info.Attacks
}

// ChainFlags ORs the flags of every frame reachable from start, stopping at
// the null frame or the first repeat.
func ChainFlags(t SideTable, src FrameSource, start int) Flag {
	var out Flag
	for _, id := range Chain(src, start) {
		out |= t.Flags(id)
	}
	return out
}

// Chain lists the frames reachable from start in order.
func Chain(src FrameSource, start int) []int {
	var chain []int
	seen := make(map[int]bool)
	for id := start; id != deh.StateNull && !seen[id]; {
		f, ok := src.Frame(id)
		if !ok {
			break
		}
		seen[id] = true
		chain = append(chain, id)
		id = f.Next
	}
	return chain
}
