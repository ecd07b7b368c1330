package heuristics

import (
	"slices"

	"intent-router/internal/intent"
)

// Directness is how strongly the user asked for a transfer-free route.
type Directness string

const (
	DirectnessNone      Directness = "none"
	DirectnessPreferred Directness = "preferred"
	DirectnessStrict    Directness = "strict"
)

// InferDirectness classifies explicit directness markers in text.
func InferDirectness(text string) Directness {
	if strictPhraseRe.MatchString(text) {
		return DirectnessStrict
	}

	hasDirect := directWordRe.MatchString(text)
	if restrictiveRe.MatchString(text) && (hasDirect || transferWordRe.MatchString(text)) {
		return DirectnessStrict
	}
	if preferPhraseRe.MatchString(text) {
		return DirectnessPreferred
	}
	if hasDirect && softMarkerRe.MatchString(text) {
		return DirectnessPreferred
	}
	if hasDirect {
		return DirectnessStrict
	}
	return DirectnessNone
}

// ApplyDirectness returns a copy of r with the directness mapping applied:
// strict forces directOnly and zero transfers, preferred ranks by fewest
// transfers unless a hard constraint already forces directness, and none
// strips any stale strict-direct hard constraint.
func ApplyDirectness(r intent.Requested, d Directness) intent.Requested {
	out := copyRequested(r)

	switch d {
	case DirectnessStrict:
		if out.Hard == nil {
			out.Hard = &intent.Hard{}
		}
		out.Hard.DirectOnly = intent.Bool(true)
		out.Hard.MaxTransfers = intent.Int(0)

	case DirectnessPreferred:
		if out.ForcesDirect() {
			return out
		}
		if out.Soft == nil {
			out.Soft = &intent.Soft{}
		}
		rankBy := []string{intent.RankFewestTransfers}
		for _, key := range out.Soft.RankBy {
			if !slices.Contains(rankBy, key) {
				rankBy = append(rankBy, key)
			}
		}
		out.Soft.RankBy = rankBy

	default:
		if out.Hard != nil {
			out.Hard.DirectOnly = nil
			if out.Hard.MaxTransfers != nil && *out.Hard.MaxTransfers <= 0 {
				out.Hard.MaxTransfers = nil
			}
		}
	}

	return out
}

func copyRequested(r intent.Requested) intent.Requested {
	var out intent.Requested
	if r.Hard != nil {
		h := intent.Hard{AvoidStations: slices.Clone(r.Hard.AvoidStations)}
		if r.Hard.DirectOnly != nil {
			h.DirectOnly = intent.Bool(*r.Hard.DirectOnly)
		}
		if r.Hard.MaxTransfers != nil {
			h.MaxTransfers = intent.Int(*r.Hard.MaxTransfers)
		}
		out.Hard = &h
	}
	if r.Soft != nil {
		out.Soft = &intent.Soft{RankBy: slices.Clone(r.Soft.RankBy)}
	}
	return out
}
