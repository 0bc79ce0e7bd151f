package governance

import "math"

// TrustSignals is a snapshot of a member's standing, read from the
// identity subsystem at the moment it is needed.
type TrustSignals struct {
	ReputationPoints int64
	TotalExperience  int64
	BadgeCount       int64
}

// WeightPolicy turns trust signals into voting weight. The coefficients
// are governance policy, not structure; deployments tune them through
// config. The ceiling bounds any single voter's influence relative to
// quorum size.
type WeightPolicy struct {
	ReputationFactor float64
	BadgeBonus       int64
	Floor            int64
	Ceiling          int64
}

// DefaultWeightPolicy returns the stock weighting used when no config
// overrides are present.
func DefaultWeightPolicy() WeightPolicy {
	return WeightPolicy{
		ReputationFactor: 0.5,
		BadgeBonus:       2,
		Floor:            1,
		Ceiling:          1000,
	}
}

// Weight computes a member's voting weight from a trust snapshot.
// Pure; no side effects.
func (p WeightPolicy) Weight(sig TrustSignals) int64 {
	xp := sig.TotalExperience
	if xp < 0 {
		xp = 0
	}
	w := int64(math.Sqrt(float64(xp)))
	w += int64(math.Round(float64(sig.ReputationPoints) * p.ReputationFactor))
	w += sig.BadgeCount * p.BadgeBonus

	if w < p.Floor {
		w = p.Floor
	}
	if p.Ceiling > 0 && w > p.Ceiling {
		w = p.Ceiling
	}
	return w
}
