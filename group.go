// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"sort"
	"sync"
)

// GroupMember is implemented by [CappedPipe] (the only pipe flavor a
// [Group] can own — [Ref] always finalizes as capped, per spec.md
// §4.3).
type GroupMember interface {
	groupID() string
	TriggerDiscard() bool
	setOwner(g *Group) error
	clearOwner()
}

// Group is an unordered, deduplicated, owning collection of capped
// pipes that can be triggered and destroyed together.
//
// A pipe already owned by another Group is rejected by [Group.Add]
// (spec.md §5: "adding a pipe already owned by another Group is
// rejected").
type Group struct {
	mu      sync.Mutex
	members map[string]GroupMember
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{members: make(map[string]GroupMember)}
}

var (
	defaultGroupOnce sync.Once
	defaultGroup     *Group
)

// DefaultGroup returns the lazily-initialized, process-wide default
// Group (spec.md §9, "Group as process-wide GC-like pool ... expose a
// default group as a lazily-initialized, explicitly-destroyable
// singleton"). Callers that want isolation should construct their own
// Group with [NewGroup] instead.
func DefaultGroup() *Group {
	defaultGroupOnce.Do(func() {
		defaultGroup = NewGroup()
	})
	return defaultGroup
}

// Add adds p to the group, taking ownership of it. Returns an error if
// p is already owned by a different group.
func (g *Group) Add(p GroupMember) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := p.setOwner(g); err != nil {
		return err
	}
	g.members[p.groupID()] = p
	return nil
}

// Remove removes p from the group and clears its ownership, if present.
func (g *Group) Remove(p GroupMember) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.members[p.groupID()]; !ok {
		return
	}
	delete(g.members, p.groupID())
	p.clearOwner()
}

// Destroy is an alias for [Group.Remove], matching spec.md §4.6's
// `destroy(p)` operation name.
func (g *Group) Destroy(p GroupMember) {
	g.Remove(p)
}

// Clear releases all members without requiring the caller to name
// them individually.
func (g *Group) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range g.members {
		m.clearOwner()
	}
	g.members = make(map[string]GroupMember)
}

// DestroyAll is an alias for [Group.Clear], matching spec.md §4.6's
// `destroy_all` operation name.
func (g *Group) DestroyAll() {
	g.Clear()
}

// Trigger iterates members in unspecified but stable order (ascending
// member id; a member's trigger completes before the next begins;
// spec.md §5), triggering each. The returned bool is the logical OR of
// each member's triggered flag.
func (g *Group) Trigger() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	triggered := false
	for _, id := range ids {
		if g.members[id].TriggerDiscard() {
			triggered = true
		}
	}
	return triggered
}

// Size reports the number of members currently owned by the group.
func (g *Group) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.members)
}

// Members returns a snapshot slice of the group's current members, for
// iteration (spec.md §6's `begin`/`end`).
func (g *Group) Members() []GroupMember {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]GroupMember, 0, len(g.members))
	for _, m := range g.members {
		out = append(out, m)
	}
	return out
}
