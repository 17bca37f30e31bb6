package domain

import (
	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Bnei-Baruch/kvo/common"
	"github.com/Bnei-Baruch/kvo/instrumentation"
	"github.com/Bnei-Baruch/kvo/pkg/patterns"
)

var ErrMissingNewValue = pkgerr.New("change has no new value")

const birthdayOptions = patterns.OptionOld | patterns.OptionNew

// BirthdayObserver reacts to age changes of a dog it does not own.
// It registers on construction and stays registered until Close.
type BirthdayObserver struct {
	role  string
	dog   *Dog
	sink  Sink
	token patterns.Token
}

func NewDogWalker(dog *Dog, sink Sink) (*BirthdayObserver, error) {
	return newBirthdayObserver(common.RoleWalker, dog, sink, birthdayOptions)
}

func NewDogGroomer(dog *Dog, sink Sink) (*BirthdayObserver, error) {
	return newBirthdayObserver(common.RoleGroomer, dog, sink, birthdayOptions)
}

func newBirthdayObserver(role string, dog *Dog, sink Sink, opts patterns.Options) (*BirthdayObserver, error) {
	o := &BirthdayObserver{
		role: role,
		dog:  dog,
		sink: sink,
	}

	token, err := dog.ObserveAge(opts, o)
	if err != nil {
		dog.ForgetAge(token)
		return nil, pkgerr.Wrapf(err, "%s observe age", role)
	}
	o.token = token

	return o, nil
}

func (o *BirthdayObserver) Role() string {
	return o.role
}

func (o *BirthdayObserver) Notify(change patterns.Change) error {
	if err := o.react(change); err != nil {
		if err == ErrMissingNewValue {
			instrumentation.Stats.SkippedCounter.WithLabelValues(o.role).Inc()
			return nil
		}
		instrumentation.Stats.ErrorsCounter.WithLabelValues(o.role).Inc()
		log.Error().Err(err).Str("observer", o.role).Msg("birthday reaction")
		return pkgerr.WithMessage(err, o.role)
	}

	instrumentation.Stats.NotificationsCounter.WithLabelValues(o.role).Inc()
	return nil
}

func (o *BirthdayObserver) react(change patterns.Change) error {
	if !change.NewValue.Valid {
		return ErrMissingNewValue
	}

	return o.sink.Deliver(Greeting{
		Role:     o.role,
		Dog:      o.dog.Name(),
		Age:      change.NewValue.Int,
		OldValue: change.OldValue.Int,
		NewValue: change.NewValue.Int,
	})
}

// Close deregisters the observer. Calling it more than once is harmless.
func (o *BirthdayObserver) Close() {
	o.dog.ForgetAge(o.token)
}
