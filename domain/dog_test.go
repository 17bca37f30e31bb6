package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"

	"github.com/Bnei-Baruch/kvo/pkg/patterns"
)

func TestDog(t *testing.T) {
	dog := NewDog("Snoopy", 5)
	assert.Equal(t, "Snoopy", dog.Name())
	assert.Equal(t, 5, dog.Age())

	var changes []patterns.Change
	token, err := dog.ObserveAge(patterns.OptionOld|patterns.OptionNew, patterns.ObserverFunc(func(c patterns.Change) error {
		changes = append(changes, c)
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, dog.IncrementAge())
	require.NoError(t, dog.SetAge(6))
	assert.Equal(t, 6, dog.Age())
	require.Len(t, changes, 2, "same value still notifies")
	assert.Equal(t, null.IntFrom(6), changes[1].OldValue)
	assert.Equal(t, null.IntFrom(6), changes[1].NewValue)

	dog.ForgetAge(token)
	dog.ForgetAge(token)
	require.NoError(t, dog.IncrementAge())
	assert.Len(t, changes, 2)
	assert.Zero(t, dog.AgeObservers())
}
