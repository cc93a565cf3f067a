package leavemarker

// GateDecision is the outcome of a page-level feature gate check.
type GateDecision int

const (
	// GatePending means the entitlement snapshot is still loading; render a
	// loading indicator, never the feature or the interstitial.
	GatePending GateDecision = iota
	// GateAllowed means the feature flag is on; render the feature.
	GateAllowed
	// GateUpgradeRequired means the flag is off; render the upgrade
	// interstitial pointing at the plan-selection route.
	GateUpgradeRequired
)

func (d GateDecision) String() string {
	switch d {
	case GateAllowed:
		return "allowed"
	case GateUpgradeRequired:
		return "upgrade-required"
	default:
		return "pending"
	}
}

// FeatureGate converts an entitlement flag into a render decision. There is
// no partial or preview mode; the branch is strictly on the boolean.
type FeatureGate struct {
	entitlements *EntitlementStore
}

func NewFeatureGate(entitlements *EntitlementStore) *FeatureGate {
	return &FeatureGate{entitlements: entitlements}
}

// Check evaluates one feature flag against the current snapshot.
func (g *FeatureGate) Check(feature Feature) GateDecision {
	if g.entitlements.Loading() {
		return GatePending
	}
	snap := g.entitlements.Snapshot()
	if snap == nil {
		return GatePending
	}
	if snap.Flag(feature) {
		return GateAllowed
	}
	return GateUpgradeRequired
}

// UpgradeRoute is where the interstitial's call to action points.
func (g *FeatureGate) UpgradeRoute() string { return RoutePricing }
