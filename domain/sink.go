package domain

import (
	"fmt"
	"io"
	"sync"

	pkgerr "github.com/pkg/errors"
)

// Greeting is what an observer produces for a birthday.
// OldValue and NewValue are display values, absent values show as 0.
type Greeting struct {
	Role     string
	Dog      string
	Age      int
	OldValue int
	NewValue int
}

type Sink interface {
	Deliver(g Greeting) error
}

type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Deliver(g Greeting) error {
	if _, err := fmt.Fprintf(s.out, "Hey %s, happy %d birthday from the %s\n", g.Dog, g.Age, g.Role); err != nil {
		return pkgerr.Wrap(err, "write greeting")
	}
	if _, err := fmt.Fprintf(s.out, "%s oldValue: %d\n%s newValue: %d\n", g.Role, g.OldValue, g.Role, g.NewValue); err != nil {
		return pkgerr.Wrap(err, "write values")
	}
	return nil
}

type MemorySink struct {
	mu        sync.Mutex
	greetings []Greeting
}

func (s *MemorySink) Deliver(g Greeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greetings = append(s.greetings, g)
	return nil
}

func (s *MemorySink) Greetings() []Greeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Greeting, len(s.greetings))
	copy(res, s.greetings)
	return res
}

func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.greetings)
}
