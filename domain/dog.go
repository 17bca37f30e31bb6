package domain

import (
	"github.com/rs/zerolog/log"

	"github.com/Bnei-Baruch/kvo/common"
	"github.com/Bnei-Baruch/kvo/instrumentation"
	"github.com/Bnei-Baruch/kvo/pkg/patterns"
)

// Dog is observed through its age attribute.
type Dog struct {
	name string
	age  *patterns.IntAttribute
}

func NewDog(name string, age int) *Dog {
	return &Dog{
		name: name,
		age:  patterns.NewIntAttribute(common.KeyAge, age),
	}
}

func (d *Dog) Name() string {
	return d.name
}

func (d *Dog) Age() int {
	return d.age.Get()
}

func (d *Dog) SetAge(age int) error {
	instrumentation.Stats.MutationsCounter.WithLabelValues(d.age.Key()).Inc()
	log.Debug().Str("dog", d.name).Int("age", age).Msg("set age")
	return d.age.Set(age)
}

func (d *Dog) IncrementAge() error {
	return d.SetAge(d.Age() + 1)
}

func (d *Dog) ObserveAge(opts patterns.Options, observer patterns.Observer) (patterns.Token, error) {
	return d.age.Observe(opts, observer)
}

func (d *Dog) ForgetAge(token patterns.Token) {
	d.age.Deregister(token)
}

func (d *Dog) AgeObservers() int {
	return d.age.Len()
}
