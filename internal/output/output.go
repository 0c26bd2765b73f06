// Package output collects converted text into named lumps.
package output

import (
	"fmt"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

//go:generate mockgen -destination=mock/mock_writer.go -package=outputmock github.com/edge-classic/EDGE-classic-sub008/internal/output Writer

// LumpKind identifies an output section.
type LumpKind int

const (
	LumpThings LumpKind = iota
	LumpAttacks
	LumpWeapons
	LumpSounds
	LumpLanguage
	LumpRScript
)

// AllKinds lists the kinds in emission order.
var AllKinds = []LumpKind{LumpThings, LumpAttacks, LumpWeapons, LumpSounds, LumpLanguage, LumpRScript}

// Name returns the lump name.
func (k LumpKind) Name() string {
	switch k {
	case LumpThings:
		return "DDFTHING"
	case LumpAttacks:
		return "DDFATK"
	case LumpWeapons:
		return "DDFWEAP"
	case LumpSounds:
		return "DDFSFX"
	case LumpLanguage:
		return "DDFLANG"
	case LumpRScript:
		return "RSCRIPT"
	default:
		return "UNKNOWN"
	}
}

func (k LumpKind) header() string {
	switch k {
	case LumpThings:
		return "<THINGS>"
	case LumpAttacks:
		return "<ATTACKS>"
	case LumpWeapons:
		return "<WEAPONS>"
	case LumpSounds:
		return "<SOUNDS>"
	case LumpLanguage:
		return "<LANGUAGES>"
	default:
		return ""
	}
}

// KindByName resolves a lump name such as "DDFTHING".
func KindByName(name string) (LumpKind, bool) {
	for _, k := range AllKinds {
		if strings.EqualFold(k.Name(), name) {
			return k, true
		}
	}
	return 0, false
}

// Writer receives converted text. Text is append-only.
type Writer interface {
	BeginLump(kind LumpKind)
	Printf(format string, args ...any)
	EndLump()
}

// Lump is one finished section.
type Lump struct {
	Kind LumpKind
	Name string
	Text string
}

// Buffer is an in-memory Writer.
type Buffer struct {
	lumps   map[LumpKind]*strings.Builder
	current *strings.Builder
	stray   int
}

var _ Writer = (*Buffer)(nil)

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{lumps: make(map[LumpKind]*strings.Builder)}
}

// BeginLump selects the lump later text goes to. The header is written the
// first time a kind is opened.
func (b *Buffer) BeginLump(kind LumpKind) {
	sb, ok := b.lumps[kind]
	if !ok {
		sb = &strings.Builder{}
		if h := kind.header(); h != "" {
			sb.WriteString(h)
			sb.WriteString("\n\n")
		}
		b.lumps[kind] = sb
	}
	b.current = sb
}

func (b *Buffer) Printf(format string, args ...any) {
	if b.current == nil {
		b.stray++
		return
	}
	fmt.Fprintf(b.current, format, args...)
}

func (b *Buffer) EndLump() {
	b.current = nil
}

// Err reports text written while no lump was open.
func (b *Buffer) Err() error {
	if b.stray > 0 {
		return errors.FailedPreconditionf("%d writes outside a lump", b.stray)
	}
	return nil
}

// Lumps returns every opened lump in emission order.
func (b *Buffer) Lumps() []Lump {
	var out []Lump
	for _, k := range AllKinds {
		if sb, ok := b.lumps[k]; ok {
			out = append(out, Lump{Kind: k, Name: k.Name(), Text: sb.String()})
		}
	}
	return out
}

// Text returns the contents of one lump, "" when it was never opened.
func (b *Buffer) Text(kind LumpKind) string {
	if sb, ok := b.lumps[kind]; ok {
		return sb.String()
	}
	return ""
}
