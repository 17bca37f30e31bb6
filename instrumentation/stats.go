package instrumentation

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var Stats = NewCollectors()

type Collectors struct {
	Registry             *prometheus.Registry
	MutationsCounter     *prometheus.CounterVec
	NotificationsCounter *prometheus.CounterVec
	SkippedCounter       *prometheus.CounterVec
	ErrorsCounter        *prometheus.CounterVec
}

func NewCollectors() *Collectors {
	c := new(Collectors)
	c.Init()
	return c
}

func (c *Collectors) Init() {
	c.Registry = prometheus.NewRegistry()

	c.MutationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvo",
		Subsystem: "attribute",
		Name:      "mutations_total",
		Help:      "Assignments to observable attributes",
	}, []string{
		// attribute key
		"key",
	})

	c.NotificationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvo",
		Subsystem: "observer",
		Name:      "notifications_total",
		Help:      "Change notifications handled by observers",
	}, []string{
		// observer role
		"observer",
	})

	c.SkippedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvo",
		Subsystem: "observer",
		Name:      "skipped_total",
		Help:      "Change notifications ignored for lack of a new value",
	}, []string{"observer"})

	c.ErrorsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvo",
		Subsystem: "observer",
		Name:      "errors_total",
		Help:      "Reactions that failed",
	}, []string{"observer"})

	c.Registry.MustRegister(c.MutationsCounter)
	c.Registry.MustRegister(c.NotificationsCounter)
	c.Registry.MustRegister(c.SkippedCounter)
	c.Registry.MustRegister(c.ErrorsCounter)
}

func (c *Collectors) Reset() {
	c.MutationsCounter.Reset()
	c.NotificationsCounter.Reset()
	c.SkippedCounter.Reset()
	c.ErrorsCounter.Reset()
}

// WriteText dumps all collected metrics in the prometheus text format.
func (c *Collectors) WriteText(w io.Writer) error {
	families, err := c.Registry.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
