// Package policy implements the pluggable selection, correction, and
// hint strategies. The active strategy is read from the session state
// at call time, so a run can be reconfigured without rebuilding the
// policies.
package policy

import (
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/recard/internal/random"
)

// Policies bundles the strategies with their randomness and logger.
type Policies struct {
	rnd *random.Source
	log *logrus.Logger
}

// New builds Policies around a random source and a logger.
func New(rnd *random.Source, log *logrus.Logger) *Policies {
	return &Policies{rnd: rnd, log: log}
}
