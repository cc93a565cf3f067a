package leavemarker

import (
	"context"
	"net/http"
	"testing"
)

func TestGatePendingBeforeFirstFetch(t *testing.T) {
	c, _ := newTestClient(t, http.NewServeMux())
	session := NewSessionStore(c)
	gate := NewFeatureGate(NewEntitlementStore(c, session))

	if got := gate.Check(FeatureAttendanceTracking); got != GatePending {
		t.Fatalf("decision before first fetch = %s", got)
	}
}

func TestGateBranchesOnFlag(t *testing.T) {
	c, _ := newTestClient(t, authedMux(proEntitlement()))
	session := NewSessionStore(c)
	entitlements := NewEntitlementStore(c, session)
	gate := NewFeatureGate(entitlements)

	if err := session.Login(context.Background(), "amit@acme.example", "secret"); err != nil {
		t.Fatal(err)
	}
	if got := gate.Check(FeatureAttendanceTracking); got != GateAllowed {
		t.Fatalf("attendanceTracking = %s, want allowed", got)
	}
	if got := gate.Check(FeatureAdvancedReports); got != GateAllowed {
		t.Fatalf("advancedReports = %s, want allowed", got)
	}
	if got := gate.Check(FeatureAPIAccess); got != GateUpgradeRequired {
		t.Fatalf("apiAccess = %s, want upgrade-required", got)
	}
	if gate.UpgradeRoute() != RoutePricing {
		t.Fatalf("upgrade route = %s", gate.UpgradeRoute())
	}
}

func TestGateUpgradeRequiredOnFreeDefault(t *testing.T) {
	c, _ := newTestClient(t, http.NewServeMux())
	session := NewSessionStore(c)
	entitlements := NewEntitlementStore(c, session)
	gate := NewFeatureGate(entitlements)

	entitlements.Refresh(context.Background())
	for _, f := range []Feature{
		FeatureAttendanceTracking,
		FeatureAdvancedReports,
		FeatureAttendanceRateAnalytics,
		FeatureCustomLeaveTypes,
		FeatureAPIAccess,
		FeaturePrioritySupport,
	} {
		if got := gate.Check(f); got != GateUpgradeRequired {
			t.Fatalf("%s on FREE default = %s, want upgrade-required", f, got)
		}
	}
}
