package internal

import (
	"strings"

	"smartmoney/internal/domain"
)

// base reliability weight per source class. These were tuned against a
// couple years of disclosure data - legislative trades lead returns more
// often than 13F snapshots, insider buys more than either.
var sourceBaseWeights = map[domain.SignalSource]float64{
	domain.SourceInsider:         1.4,
	domain.SourceLegislative:     1.2,
	domain.SourceEtfManager:      1.0,
	domain.SourceQuarterlyFiling: 0.8,
	domain.SourceDarkPool:        0.7,
	domain.SourceOptions:         0.6,
}

// neutralWeight is returned for anything we don't recognize. Unknown
// sources/actors are not an error - the collectors occasionally surface
// feeds we haven't calibrated yet.
const neutralWeight = 1.0

type actorOverride struct {
	pattern string
	weight  float64
}

// actorOverrides maps named actors with an unusual track record to their
// own weight. Matching is case-insensitive substring containment over the
// free-text actor field, since feeds disagree on exact naming ("Nancy
// Pelosi" vs "Pelosi, Nancy"). Evaluated in registration order; when
// multiple patterns match, the highest weight wins.
var actorOverrides = []actorOverride{
	{"pelosi", 2.5},
	{"burry", 2.2},
	{"renaissance", 1.6},
	{"berkshire", 1.5},
	{"buffett", 1.5},
	{"bridgewater", 1.4},
	{"citadel", 1.3},
}

// SourceWeightTable resolves the authority weight of a single signal. It
// is a pure lookup - no registration at runtime, no error paths.
type SourceWeightTable struct {
	base      map[domain.SignalSource]float64
	overrides []actorOverride
}

func NewSourceWeightTable() SourceWeightTable {
	return SourceWeightTable{
		base:      sourceBaseWeights,
		overrides: actorOverrides,
	}
}

// WeightFor returns the authority weight for a signal's source/actor
// pair. Overrides only ever raise the base weight - a famous actor on a
// weak source keeps the override, an unknown actor on a strong source
// keeps the base.
func (t SourceWeightTable) WeightFor(source domain.SignalSource, actor string) float64 {
	weight, ok := t.base[source]
	if !ok {
		weight = neutralWeight
	}

	lowered := strings.ToLower(actor)
	for _, o := range t.overrides {
		if strings.Contains(lowered, o.pattern) && o.weight > weight {
			weight = o.weight
		}
	}

	return weight
}
