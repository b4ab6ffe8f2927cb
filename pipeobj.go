// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"errors"
	"fmt"
)

// safeInject runs comp.Inject(in), recovering a panic into an error so
// that callers configured with an [ObservabilitySink] can report it
// instead of crashing.
func safeInject[I, O any](comp compositionNode[I, O], in I) (out O, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipe: inject panicked: %v", r)
		}
	}()
	return comp.Inject(in), nil
}

// safeTriggerInfo runs comp.triggerInfo(), recovering a panic the same
// way [safeInject] does.
func safeTriggerInfo[I, O any](comp compositionNode[I, O]) (out O, triggered bool, supported bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipe: trigger panicked: %v", r)
		}
	}()
	out, triggered, supported = comp.triggerInfo()
	return
}

// PipeEntry is the external-collaborator interface (spec.md §6) used to
// forward a value into a downstream pipe without inspecting its
// result. [CappedPipe] and [OpenPipe] both implement it.
type PipeEntry[T any] interface {
	InjectEntry(in T)
}

// PipeExit is the external-collaborator interface (spec.md §6) used to
// pull a value out of an upstream pipe without injecting anything.
// [CappedPipe] and [OpenPipe] both implement it.
type PipeExit[T any] interface {
	Extract() ExitValue[T]
	Trigger() (ExitValue[T], bool)
}

// CappedPipe is a terminal pipe: it cannot forward to a downstream
// entry. Build one with [Cap] or [Ref].
type CappedPipe[I, O any] struct {
	id    string
	comp  compositionNode[I, O]
	cfg   *Config
	owner *Group
}

var (
	_ PipeEntry[int] = (*CappedPipe[int, int])(nil)
	_ PipeExit[int]  = (*CappedPipe[int, int])(nil)
)

func newCappedPipe[I, O any](seg Segment[I, O], cfg *Config) *CappedPipe[I, O] {
	cfg = configOrDefault(cfg)
	return &CappedPipe[I, O]{
		id:   cfg.IDGen(),
		comp: asNode2(seg),
		cfg:  cfg,
	}
}

// ID returns the identifier assigned to this pipe at construction,
// usable for log correlation.
func (p *CappedPipe[I, O]) ID() string {
	return p.id
}

// Inject runs the chain forward on in and returns an [ExitValue]
// wrapping the result. A panic from the underlying chain is recovered,
// reported to cfg.ErrorSink, and surfaces as the zero value of O rather
// than aborting the process.
func (p *CappedPipe[I, O]) Inject(in I) ExitValue[O] {
	defer traceSpan(p.cfg, p.id, "inject")()
	start := p.cfg.TimeNow()
	out, err := safeInject[I, O](p.comp, in)
	p.cfg.Logger.Debug("pipe inject", "id", p.id, "elapsed", p.cfg.TimeNow().Sub(start))
	if err != nil {
		p.cfg.ErrorSink.SegmentError("CappedPipe", p.id, err)
	}
	return OwnedExitValue(out)
}

// InjectEntry implements [PipeEntry] by discarding Inject's result.
func (p *CappedPipe[I, O]) InjectEntry(in I) {
	p.Inject(in)
}

// Extract runs the chain's extract and wraps the result, preserving a
// borrowed reference when the whole chain from the last extract-capable
// segment onward is reference-transparent (see [ExitValue]). When no
// segment supports extract, it returns the zero value of O, owned.
func (p *CappedPipe[I, O]) Extract() ExitValue[O] {
	v, ok := p.comp.extractInfo()
	if !ok {
		var zero O
		return OwnedExitValue(zero)
	}
	return v
}

// Trigger runs the chain's trigger and reports the produced value along
// with whether anything was actually emitted. A panic from the
// underlying chain is recovered and reported to cfg.ErrorSink.
func (p *CappedPipe[I, O]) Trigger() (ExitValue[O], bool) {
	defer traceSpan(p.cfg, p.id, "trigger")()
	start := p.cfg.TimeNow()
	out, triggered, _, err := safeTriggerInfo[I, O](p.comp)
	p.cfg.Logger.Debug("pipe trigger", "id", p.id, "elapsed", p.cfg.TimeNow().Sub(start))
	if err != nil {
		p.cfg.ErrorSink.SegmentError("CappedPipe", p.id, err)
	}
	return OwnedExitValue(out), triggered
}

// TriggerDiscard runs Trigger and reports only whether it fired,
// discarding the produced value. This is the form [Group.Trigger] uses
// over its members.
func (p *CappedPipe[I, O]) TriggerDiscard() bool {
	_, triggered := p.Trigger()
	return triggered
}

// Connect always fails on a capped pipe: connecting a terminal pipe to
// a downstream entry is a programmer error and aborts the process, per
// spec.md §7 ("connect on a capped pipe is a programmer error →
// abort").
func (p *CappedPipe[I, O]) Connect(PipeEntry[O]) {
	panic("pipe: connect called on a capped pipe")
}

func (p *CappedPipe[I, O]) groupID() string {
	return p.id
}

func (p *CappedPipe[I, O]) setOwner(g *Group) error {
	if p.owner != nil && p.owner != g {
		return errors.New("pipe: pipe already owned by another group")
	}
	p.owner = g
	return nil
}

func (p *CappedPipe[I, O]) clearOwner() {
	p.owner = nil
}

// OpenPipe is a forwardable pipe: each injected or triggered-and-fired
// value is additionally forwarded to a connected downstream entry.
// Build one with [Exit].
type OpenPipe[I, O any] struct {
	id      string
	comp    compositionNode[I, O]
	cfg     *Config
	forward PipeEntry[O]
}

var (
	_ PipeEntry[int] = (*OpenPipe[int, int])(nil)
	_ PipeExit[int]  = (*OpenPipe[int, int])(nil)
)

func newOpenPipe[I, O any](seg Segment[I, O], cfg *Config) *OpenPipe[I, O] {
	cfg = configOrDefault(cfg)
	return &OpenPipe[I, O]{
		id:   cfg.IDGen(),
		comp: asNode2(seg),
		cfg:  cfg,
	}
}

// ID returns the identifier assigned to this pipe at construction.
func (p *OpenPipe[I, O]) ID() string {
	return p.id
}

// Inject runs the chain forward on in, forwards the result to the
// connected downstream entry (if any), and returns it wrapped. A panic
// from the underlying chain is recovered and reported to cfg.ErrorSink
// instead of forwarding or aborting the process.
func (p *OpenPipe[I, O]) Inject(in I) ExitValue[O] {
	defer traceSpan(p.cfg, p.id, "inject")()
	start := p.cfg.TimeNow()
	out, err := safeInject[I, O](p.comp, in)
	p.cfg.Logger.Debug("pipe inject", "id", p.id, "elapsed", p.cfg.TimeNow().Sub(start))
	if err != nil {
		p.cfg.ErrorSink.SegmentError("OpenPipe", p.id, err)
		return OwnedExitValue(out)
	}
	if p.forward != nil {
		p.forward.InjectEntry(out)
	}
	return OwnedExitValue(out)
}

// InjectEntry implements [PipeEntry] by discarding Inject's result.
func (p *OpenPipe[I, O]) InjectEntry(in I) {
	p.Inject(in)
}

// Extract runs the chain's extract and wraps the result. When no
// segment supports extract, it returns the zero value of O, owned.
func (p *OpenPipe[I, O]) Extract() ExitValue[O] {
	v, ok := p.comp.extractInfo()
	if !ok {
		var zero O
		return OwnedExitValue(zero)
	}
	return v
}

// Trigger runs the chain's trigger, forwarding the produced value
// downstream when it fired. A panic from the underlying chain is
// recovered and reported to cfg.ErrorSink.
func (p *OpenPipe[I, O]) Trigger() (ExitValue[O], bool) {
	defer traceSpan(p.cfg, p.id, "trigger")()
	start := p.cfg.TimeNow()
	out, triggered, _, err := safeTriggerInfo[I, O](p.comp)
	p.cfg.Logger.Debug("pipe trigger", "id", p.id, "elapsed", p.cfg.TimeNow().Sub(start))
	if err != nil {
		p.cfg.ErrorSink.SegmentError("OpenPipe", p.id, err)
		return OwnedExitValue(out), false
	}
	if triggered && p.forward != nil {
		p.forward.InjectEntry(out)
	}
	return OwnedExitValue(out), triggered
}

// TriggerDiscard runs Trigger and reports only whether it fired.
func (p *OpenPipe[I, O]) TriggerDiscard() bool {
	_, triggered := p.Trigger()
	return triggered
}

// Connect sets the forward link to entry, replacing any existing
// connection. If the chain supports extract, entry is immediately fed
// the current extracted value — matching spec.md §4.4's "if any chain
// segment supports extract, immediately re-extract and forward to the
// new entry."
//
// Connecting an open pipe that already has a connection silently
// replaces it (spec.md §9, kept as an open question resolved in favor
// of the source's behavior); use [OpenPipe.ConnectStrict] for the
// explicit-assertion alternative spec.md mentions as "worth" having.
func (p *OpenPipe[I, O]) Connect(entry PipeEntry[O]) {
	p.forward = entry
	if v, ok := p.comp.extractInfo(); ok {
		entry.InjectEntry(v.Get())
	}
}

// ConnectStrict behaves like [OpenPipe.Connect] but returns an error
// instead of silently replacing an existing connection.
func (p *OpenPipe[I, O]) ConnectStrict(entry PipeEntry[O]) error {
	if p.forward != nil {
		return errors.New("pipe: already connected")
	}
	p.Connect(entry)
	return nil
}

// Disconnect clears the forward link.
func (p *OpenPipe[I, O]) Disconnect() {
	p.forward = nil
}

// Connection returns the current forward link, if any.
func (p *OpenPipe[I, O]) Connection() (PipeEntry[O], bool) {
	return p.forward, p.forward != nil
}

// ConnectChain connects p to downstream and returns downstream, mirroring
// spec.md §6's `op|(other_pipe)` chaining operator (Go has no operator
// overloading, so this is the function-call equivalent).
func ConnectChain[O any](p interface{ Connect(PipeEntry[O]) }, downstream PipeEntry[O]) PipeEntry[O] {
	p.Connect(downstream)
	return downstream
}

// Extend rewires p so that next is inserted between p and its previous
// connection: next inherits p's current connection, then p connects to
// next, each link going through [OpenPipe.Connect] so a chain that
// supports extract immediately re-extracts and forwards through the new
// wiring. If p had no previous connection, next ends up disconnected.
func Extend[I, O any](p *OpenPipe[I, O], next *OpenPipe[O, O]) {
	if p.forward != nil {
		next.Connect(p.forward)
	} else {
		next.Disconnect()
	}
	p.Connect(next)
}
