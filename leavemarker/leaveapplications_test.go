package leavemarker

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestManagerApprovePayload(t *testing.T) {
	var gotPath string
	var gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /leave-applications/42/approve/manager", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		respond(w, http.StatusOK, true, "Approved", map[string]any{"id": 42, "status": "PENDING"})
	})
	c, _ := newTestClient(t, mux)

	app, err := c.LeaveApplications().ManagerApprove(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/leave-applications/42/approve/manager" {
		t.Fatalf("path = %s", gotPath)
	}
	// Approvals carry an explicit null reason, never an omitted field.
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(gotBody), &payload); err != nil {
		t.Fatalf("body not JSON: %q", gotBody)
	}
	if string(payload["approved"]) != "true" || string(payload["reason"]) != "null" {
		t.Fatalf("payload = %s", gotBody)
	}
	// Manager approval keeps the application pending until HR signs off.
	if app.Status != LeaveStatusPending {
		t.Fatalf("status = %s", app.Status)
	}
}

func TestHRRejectPayload(t *testing.T) {
	var gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /leave-applications/42/approve/hr", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		respond(w, http.StatusOK, true, "Rejected", map[string]any{"id": 42, "status": "REJECTED"})
	})
	c, _ := newTestClient(t, mux)

	app, err := c.LeaveApplications().HRReject(context.Background(), 42, "insufficient notice")
	if err != nil {
		t.Fatal(err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(gotBody), &payload); err != nil {
		t.Fatalf("body not JSON: %q", gotBody)
	}
	if string(payload["approved"]) != "false" {
		t.Fatalf("payload = %s", gotBody)
	}
	if string(payload["reason"]) != `"insufficient notice"` {
		t.Fatalf("payload = %s", gotBody)
	}
	if app.Status != LeaveStatusRejected {
		t.Fatalf("status = %s", app.Status)
	}
}

func TestMyPendingCount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /leave-applications/my-leaves/pending/count", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "", map[string]any{"count": 3})
	})
	c, _ := newTestClient(t, mux)

	n, err := c.LeaveApplications().MyPendingCount(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("count = %d", n)
	}
}

func TestCancelHitsCancelEndpoint(t *testing.T) {
	var hit bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /leave-applications/7/cancel", func(w http.ResponseWriter, r *http.Request) {
		hit = true
		respond(w, http.StatusOK, true, "Cancelled", nil)
	})
	c, _ := newTestClient(t, mux)

	if err := c.LeaveApplications().Cancel(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("cancel endpoint not reached")
	}
}
