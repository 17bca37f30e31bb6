package patterns

import (
	"sync"

	"github.com/ef-ds/deque"
	"github.com/hashicorp/go-multierror"
	pkgerr "github.com/pkg/errors"
	"github.com/volatiletech/null"
)

type opKind uint8

const (
	opSet opKind = iota
	opInitial
)

// op is a unit of pending work: an assignment with its prior and change
// rounds, or the initial notification of a single registration.
type op struct {
	kind     opKind
	value    int
	token    Token
	options  Options
	observer Observer
}

type round struct {
	old   int
	new   int
	prior bool
}

// IntAttribute is an observable integer value.
// Assignment and notification happen together in Set, there is no other way to
// change the value.
//
// Dispatch is synchronous on the caller's goroutine. Work issued from inside a
// reaction, a nested Set or an initial notification, is queued and performed
// after the current round completes, by the outermost call. A nested Set
// therefore does not change the value before it returns.
type IntAttribute struct {
	key         string
	mu          sync.Mutex
	value       int
	observers   ObserverList
	pending     deque.Deque
	dispatching bool
}

func NewIntAttribute(key string, initial int) *IntAttribute {
	return &IntAttribute{
		key:   key,
		value: initial,
	}
}

func (a *IntAttribute) Key() string {
	return a.key
}

func (a *IntAttribute) Get() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Len returns the number of registered observers.
func (a *IntAttribute) Len() int {
	return a.observers.Len()
}

// Observe registers observer and returns the token identifying its registration.
//
// With OptionInitial the observer is notified of the current value. Outside of a
// dispatch this happens before Observe returns and its error is returned with the
// token, which stays registered. Inside a dispatch the notification is queued
// like any other and its error surfaces from the outermost call.
func (a *IntAttribute) Observe(opts Options, observer Observer) (Token, error) {
	token := a.observers.Add(opts, observer)
	if !opts.Has(OptionInitial) {
		return token, nil
	}

	return token, a.enqueue(op{
		kind:     opInitial,
		token:    token,
		options:  opts,
		observer: observer,
	})
}

// Deregister removes the registration identified by token.
// Unknown or already removed tokens are ignored.
func (a *IntAttribute) Deregister(token Token) {
	a.observers.Remove(token)
}

// Set assigns v and notifies every registered observer in registration order.
// Assigning the current value notifies as well. Observers registered with
// OptionPrior are notified before the assignment.
//
// A failing observer does not prevent delivery to the remaining ones. The
// errors of all work drained by this call are returned together.
func (a *IntAttribute) Set(v int) error {
	return a.enqueue(op{kind: opSet, value: v})
}

func (a *IntAttribute) enqueue(o op) error {
	a.mu.Lock()
	a.pending.PushBack(o)
	if a.dispatching {
		a.mu.Unlock()
		return nil
	}
	a.dispatching = true
	a.mu.Unlock()

	return a.drain()
}

func (a *IntAttribute) drain() error {
	defer func() {
		if r := recover(); r != nil {
			a.mu.Lock()
			for a.pending.Len() > 0 {
				a.pending.PopFront()
			}
			a.dispatching = false
			a.mu.Unlock()
			panic(r)
		}
	}()

	var result *multierror.Error
	for {
		a.mu.Lock()
		item, ok := a.pending.PopFront()
		if !ok {
			a.dispatching = false
			a.mu.Unlock()
			break
		}
		a.mu.Unlock()

		result = a.apply(item.(op), result)
	}

	return pkgerr.Wrapf(result.ErrorOrNil(), "notify %s observers", a.key)
}

func (a *IntAttribute) apply(o op, result *multierror.Error) *multierror.Error {
	switch o.kind {
	case opInitial:
		if !a.observers.Has(o.token) {
			return result
		}
		change := Change{Key: a.key}
		if o.options.Has(OptionNew) {
			change.NewValue = null.IntFrom(a.Get())
		}
		if err := o.observer.Notify(change); err != nil {
			result = multierror.Append(result, pkgerr.Wrapf(err, "initial %s notification", a.key))
		}
		return result
	}

	// only the draining call assigns, so the value is stable until the swap below
	old := a.Get()
	result = a.deliver(round{old: old, prior: true}, result)

	a.mu.Lock()
	a.value = o.value
	a.mu.Unlock()

	return a.deliver(round{old: old, new: o.value}, result)
}

func (a *IntAttribute) deliver(r round, result *multierror.Error) *multierror.Error {
	for _, reg := range a.observers.snapshot() {
		if r.prior && !reg.options.Has(OptionPrior) {
			continue
		}

		change := Change{Key: a.key, Prior: r.prior}
		if reg.options.Has(OptionOld) {
			change.OldValue = null.IntFrom(r.old)
		}
		if !r.prior && reg.options.Has(OptionNew) {
			change.NewValue = null.IntFrom(r.new)
		}

		if err := reg.observer.Notify(change); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
