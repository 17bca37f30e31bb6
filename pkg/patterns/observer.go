package patterns

import (
	"sync"

	"github.com/volatiletech/null"
)

type Options uint8

const (
	OptionNew Options = 1 << iota
	OptionOld
	OptionInitial
	OptionPrior
)

func (o Options) Has(opt Options) bool {
	return o&opt == opt
}

// Change is delivered to observers once per mutation.
// A value not requested through Options is delivered absent.
type Change struct {
	Key      string
	OldValue null.Int
	NewValue null.Int
	Prior    bool
}

type Observer interface {
	Notify(change Change) error
}

type ObserverFunc func(change Change) error

func (f ObserverFunc) Notify(change Change) error {
	return f(change)
}

type Token uint64

type registration struct {
	token    Token
	options  Options
	observer Observer
}

// ObserverList keeps registrations in registration order.
type ObserverList struct {
	sync.RWMutex
	items []*registration
	next  Token
}

func (l *ObserverList) Add(opts Options, observer Observer) Token {
	l.Lock()
	defer l.Unlock()

	l.next++
	l.items = append(l.items, &registration{
		token:    l.next,
		options:  opts,
		observer: observer,
	})
	return l.next
}

// Remove is a no-op for tokens that are not registered.
func (l *ObserverList) Remove(token Token) bool {
	l.Lock()
	defer l.Unlock()

	for i, r := range l.items {
		if r.token == token {
			items := make([]*registration, 0, len(l.items)-1)
			items = append(items, l.items[:i]...)
			l.items = append(items, l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *ObserverList) Has(token Token) bool {
	l.RLock()
	defer l.RUnlock()

	for _, r := range l.items {
		if r.token == token {
			return true
		}
	}
	return false
}

func (l *ObserverList) Len() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.items)
}

func (l *ObserverList) snapshot() []*registration {
	l.RLock()
	defer l.RUnlock()
	return l.items
}
