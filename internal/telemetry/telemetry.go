// Package telemetry provides the solver's observability layer: a
// logrus-backed trace sink implementing sat.Trace, and a prometheus
// collector tracking search progress. Neither is part of the CDCL core;
// both are injected into it, never imported by it.
package telemetry

import (
	"github.com/sirupsen/logrus"

	"github.com/satcore/cdcl/internal/sat"
)

// Sink implements sat.Trace on top of a *logrus.Logger, logging one
// structured entry per solver lifecycle event. Decisions log at debug level
// (high volume); conflicts and learned clauses log at info.
type Sink struct {
	log     *logrus.Logger
	metrics *Metrics
}

// NewSink returns a Sink that logs through log and, if metrics is non-nil,
// also updates it on every event.
func NewSink(log *logrus.Logger, metrics *Metrics) *Sink {
	if log == nil {
		log = logrus.New()
	}
	return &Sink{log: log, metrics: metrics}
}

// NewNopSink returns a Sink whose logger discards everything, for callers
// that want the Metrics side-effects without log output.
func NewNopSink(metrics *Metrics) *Sink {
	log := logrus.New()
	log.SetOutput(discard{})
	return NewSink(log, metrics)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (s *Sink) OnDecision(level int, lit sat.Literal) {
	s.log.WithFields(logrus.Fields{
		"level":   level,
		"literal": lit.String(),
	}).Debug("decision")
	if s.metrics != nil {
		s.metrics.Decisions.Inc()
	}
}

func (s *Sink) OnConflict(level int, totalConflicts int64) {
	s.log.WithFields(logrus.Fields{
		"level":     level,
		"conflicts": totalConflicts,
	}).Info("conflict")
	if s.metrics != nil {
		s.metrics.Conflicts.Inc()
	}
}

func (s *Sink) OnLearn(clause *sat.Clause, backjumpLevel int) {
	s.log.WithFields(logrus.Fields{
		"clause":         clause.String(),
		"backjump_level": backjumpLevel,
	}).Info("learn")
	if s.metrics != nil {
		s.metrics.LearnedClauses.Inc()
		s.metrics.TrailSize.Set(float64(backjumpLevel))
	}
}

var _ sat.Trace = (*Sink)(nil)
