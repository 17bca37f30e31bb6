package scenario

import (
	"context"

	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Bnei-Baruch/kvo/common"
	"github.com/Bnei-Baruch/kvo/domain"
)

type Config struct {
	DogName    string
	DogAge     int
	Increments int
}

func ConfigFromCommon() Config {
	return Config{
		DogName:    common.Config.DogName,
		DogAge:     common.Config.DogAge,
		Increments: common.Config.Increments,
	}
}

type Report struct {
	Dog       string
	FinalAge  int
	Mutations int
	Reactions int
}

type countingSink struct {
	domain.Sink
	count int
}

func (s *countingSink) Deliver(g domain.Greeting) error {
	if err := s.Sink.Deliver(g); err != nil {
		return err
	}
	s.count++
	return nil
}

// Run plays the birthday scenario: a walker and a groomer observe the same dog
// whose age is then incremented cfg.Increments times.
func Run(ctx context.Context, cfg Config, sink domain.Sink) (*Report, error) {
	cs := &countingSink{Sink: sink}

	dog := domain.NewDog(cfg.DogName, cfg.DogAge)

	walker, err := domain.NewDogWalker(dog, cs)
	if err != nil {
		return nil, pkgerr.Wrap(err, "domain.NewDogWalker")
	}
	defer walker.Close()

	groomer, err := domain.NewDogGroomer(dog, cs)
	if err != nil {
		return nil, pkgerr.Wrap(err, "domain.NewDogGroomer")
	}
	defer groomer.Close()

	log.Info().Str("dog", dog.Name()).Int("age", dog.Age()).Int("increments", cfg.Increments).Msg("scenario start")

	report := &Report{Dog: dog.Name()}
	for i := 0; i < cfg.Increments; i++ {
		if err := ctx.Err(); err != nil {
			return nil, pkgerr.Wrapf(err, "after %d increments", i)
		}
		if err := dog.IncrementAge(); err != nil {
			return nil, pkgerr.Wrapf(err, "increment %d", i+1)
		}
		report.Mutations++
	}

	report.FinalAge = dog.Age()
	report.Reactions = cs.count

	log.Info().
		Int("final_age", report.FinalAge).
		Int("reactions", report.Reactions).
		Msg("scenario finish")

	return report, nil
}
