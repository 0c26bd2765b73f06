package fields

import (
	"fmt"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

func frameInt(name string, kind Kind, p func(*deh.Frame) *int) Ref[deh.Frame] {
	return Ref[deh.Frame]{
		Name: name,
		Kind: kind,
		Get:  func(f *deh.Frame) int { return *p(f) },
		Set:  func(f *deh.Frame, v int) { *p(f) = v },
	}
}

func frameArg(n int) Ref[deh.Frame] {
	return frameInt(fmt.Sprintf("Args%d", n+1), KindUnconstrained, func(f *deh.Frame) *int { return &f.Args[n] })
}

// Frames is the frame field registry.
var Frames = NewTable(
	frameInt("Sprite number", KindSpriteIndex, func(f *deh.Frame) *int { return &f.Sprite }),
	frameInt("Sprite subnumber", KindSubspriteIndex, func(f *deh.Frame) *int { return &f.Frame }),
	frameInt("Duration", KindUnconstrained, func(f *deh.Frame) *int { return &f.Tics }),
	frameInt("Next frame", KindFrameIndex, func(f *deh.Frame) *int { return &f.Next }),
	frameInt("Unknown 1", KindUnconstrained, func(f *deh.Frame) *int { return &f.Misc1 }),
	frameInt("Unknown 2", KindUnconstrained, func(f *deh.Frame) *int { return &f.Misc2 }),
	frameArg(0), frameArg(1), frameArg(2), frameArg(3),
	frameArg(4), frameArg(5), frameArg(6), frameArg(7),
	Ref[deh.Frame]{
		Name: "MBF21 Bits",
		Kind: KindBitFlagWord,
		Get:  func(f *deh.Frame) int { return int(f.Flags) },
		Set:  func(f *deh.Frame, v int) { f.Flags = deh.FrameFlag(uint32(v)) },
	},
)
