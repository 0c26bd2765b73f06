// Package states splits the frame graph of one entity into role groups and
// writes them as DDF state lists.
package states

import (
	"fmt"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

// Source reads frames and sprite names.
type Source interface {
	Frame(id int) (deh.Frame, bool)
	SpriteName(id int) string
}

// ActionFunc renders the DDF action of a frame.
type ActionFunc func(id int, f deh.Frame) string

// DefaultAction renders a frame action straight from the catalog.
func DefaultAction(_ int, f deh.Frame) string {
	if info, ok := actions.Lookup(f.Action); ok && f.Action != "" {
		return info.DDF
	}
	return "NOTHING"
}

// Group is the resolved chain of one role.
type Group struct {
	Role   deh.Role
	Start  int
	Frames []int
	// Jump is the redirect written after the frames; "" loops to the
	// group start.
	Jump string
}

// Len returns the number of frames the group owns.
func (g *Group) Len() int {
	return len(g.Frames)
}

type claim struct {
	group  *Group
	offset int
}

// Grouper is built for one entity and discarded afterwards.
type Grouper struct {
	src    Source
	action ActionFunc
	groups []*Group
	owner  map[int]claim
}

// NewGrouper creates a grouper. A nil action uses DefaultAction.
func NewGrouper(src Source, action ActionFunc) *Grouper {
	if action == nil {
		action = DefaultAction
	}
	return &Grouper{
		src:    src,
		action: action,
		owner:  make(map[int]claim),
	}
}

// BeginGroup seeds a role. It returns 1 when start is a real frame and 0,
// recording nothing, for the null frame. Roles must be seeded in priority
// order.
func (g *Grouper) BeginGroup(role deh.Role, start int) int {
	if start == deh.StateNull {
		return 0
	}
	if _, ok := g.src.Frame(start); !ok {
		return 0
	}
	g.groups = append(g.groups, &Group{Role: role, Start: start})
	return 1
}

// SpreadGroups walks every seeded chain in priority order. A chain stops at
// the null frame, at a frame an earlier group claimed, or when it returns to
// one of its own frames.
func (g *Grouper) SpreadGroups() {
	for _, grp := range g.groups {
		id := grp.Start
		for {
			if id == deh.StateNull {
				grp.Jump = "#REMOVE"
				break
			}
			if c, ok := g.owner[id]; ok {
				grp.Jump = redirect(c, grp)
				break
			}
			f, ok := g.src.Frame(id)
			if !ok {
				grp.Jump = "#REMOVE"
				break
			}
			g.owner[id] = claim{group: grp, offset: len(grp.Frames)}
			grp.Frames = append(grp.Frames, id)
			id = f.Next
		}
	}
}

func redirect(c claim, from *Group) string {
	if c.group == from && c.offset == 0 {
		return ""
	}
	if c.offset == 0 {
		return "#" + c.group.Role.Tag()
	}
	return fmt.Sprintf("#%s:%d", c.group.Role.Tag(), c.offset+1)
}

// Group returns the group seeded for role.
func (g *Grouper) Group(role deh.Role) (*Group, bool) {
	for _, grp := range g.groups {
		if grp.Role == role {
			return grp, true
		}
	}
	return nil, false
}

// Groups returns the seeded groups in priority order.
func (g *Grouper) Groups() []*Group {
	return g.groups
}

// Owner returns the role whose group claimed a frame.
func (g *Grouper) Owner(frame int) (deh.Role, bool) {
	c, ok := g.owner[frame]
	if !ok {
		return 0, false
	}
	return c.group.Role, true
}

// RenderFrame formats one frame as SPRT:F:TICS:NORMAL|BRIGHT:ACTION.
func (g *Grouper) RenderFrame(id int) string {
	f, _ := g.src.Frame(id)
	bright := "NORMAL"
	if f.IsBright() {
		bright = "BRIGHT"
	}
	return fmt.Sprintf("%s:%c:%d:%s:%s",
		g.src.SpriteName(f.Sprite), rune('A'+f.SubSprite()), f.Tics, bright, g.action(id, f))
}

// OutputGroup writes the state list of role. Roles that were never seeded
// write nothing; a role whose start belongs to an earlier role writes only
// the redirect.
func (g *Grouper) OutputGroup(w output.Writer, role deh.Role) bool {
	grp, ok := g.Group(role)
	if !ok {
		return false
	}
	if grp.Len() == 0 && grp.Jump == "" {
		return false
	}

	entries := make([]string, 0, grp.Len()+1)
	for _, id := range grp.Frames {
		entries = append(entries, g.RenderFrame(id))
	}
	if grp.Jump != "" {
		entries = append(entries, grp.Jump)
	}

	w.Printf("STATES(%s) = %s;\n", role.Tag(), strings.Join(entries, ",\n    "))
	return true
}

// OutputAll writes every group in priority order and reports how many were
// written.
func (g *Grouper) OutputAll(w output.Writer) int {
	n := 0
	for _, grp := range g.groups {
		if g.OutputGroup(w, grp.Role) {
			n++
		}
	}
	return n
}
