package replay

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"testing"

	"github.com/chknd1nner/duelcore/duel"
)

func sampleSnapshot() Snapshot {
	ws := &duel.WorldState{
		Turn:  1,
		ShipA: duel.Ship{ID: "A", Shields: 100, Energy: 500},
		ShipB: duel.Ship{ID: "B", Shields: 90, Energy: 480},
	}
	timer := 0.1
	ws.Torpedoes = append(ws.Torpedoes, &duel.Torpedo{ID: "t1", Owner: "A", DetonationTimer: &timer})
	ws.BlastZones = append(ws.BlastZones, duel.NewBlastZone("z1", duel.Vec2{X: 1, Y: 2}, 10, 50, "A"))

	ordersA := duel.Orders{Movement: duel.Forward, Rotation: duel.SoftLeft, WeaponAction: duel.MaintainConfig}
	ordersB := duel.NoOpOrders()
	events := []duel.Event{{Type: duel.EventTorpedoLaunched, Turn: 1, ShipID: "A", OtherID: "t1"}}

	return NewSnapshot(ws, ordersA, ordersB, events, "thinking-a", "")
}

func TestRecorder_JSONRoundTrip(t *testing.T) {
	r := NewRecorder(JSON, false)
	r.Record(sampleSnapshot())

	raw, err := r.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	var decoded struct {
		Snapshots []Snapshot `json:"snapshots"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(decoded.Snapshots))
	}
	got := decoded.Snapshots[0]
	if got.ShipA.ID != "A" || got.ShipA.Shields != 100 {
		t.Errorf("ShipA = %+v, did not round-trip", got.ShipA)
	}
	if len(got.Torpedoes) != 1 || got.Torpedoes[0].DetonationTimer == nil || *got.Torpedoes[0].DetonationTimer != 0.1 {
		t.Errorf("torpedo detonation_timer did not round-trip: %+v", got.Torpedoes)
	}
	if got.ThinkingA != "thinking-a" {
		t.Errorf("ThinkingA = %q, want %q", got.ThinkingA, "thinking-a")
	}
}

func TestSnapshotOrders_DetonateAfterRoundTrips(t *testing.T) {
	orders := duel.Orders{
		Movement:     duel.Forward,
		Rotation:     duel.RotateNone,
		WeaponAction: duel.MaintainConfig,
		TorpedoCommands: map[string]duel.TorpedoOrder{
			"t1": {Kind: duel.TorpedoOrderDetonate, DetonateAfter: 7.25},
			"t2": {Kind: duel.TorpedoOrderSteer, Steer: duel.SoftLeft},
		},
	}

	snap := snapshotOrders(orders)

	got, ok := snap.TorpedoCommands["t1"]
	if !ok {
		t.Fatalf("expected torpedo command t1 to be present")
	}
	if got.Kind != "DETONATE" || got.DetonateAfter != 7.25 {
		t.Errorf("t1 = %+v, want Kind=DETONATE DetonateAfter=7.25", got)
	}

	got2, ok := snap.TorpedoCommands["t2"]
	if !ok {
		t.Fatalf("expected torpedo command t2 to be present")
	}
	if got2.Kind != "STEER" || got2.Steer != "SOFT_LEFT" {
		t.Errorf("t2 = %+v, want Kind=STEER Steer=SOFT_LEFT", got2)
	}
}

func TestRecorder_GzipCompression(t *testing.T) {
	r := NewRecorder(JSON, true)
	r.Record(sampleSnapshot())

	var buf bytes.Buffer
	if err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	gr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer gr.Close()

	var decoded struct {
		Snapshots []Snapshot `json:"snapshots"`
	}
	if err := json.NewDecoder(gr).Decode(&decoded); err != nil {
		t.Fatalf("decode gzip payload: %v", err)
	}
	if len(decoded.Snapshots) != 1 {
		t.Fatalf("expected 1 snapshot after decompression, got %d", len(decoded.Snapshots))
	}
}

func TestDumpInvariantViolation(t *testing.T) {
	state := &duel.WorldState{Turn: 7, ShipA: duel.Ship{ID: "A"}, ShipB: duel.Ship{ID: "B"}}

	var dump []byte
	func() {
		defer func() {
			d, err := DumpInvariantViolation(recover())
			if err == nil {
				t.Fatalf("expected recovered error")
			}
			dump = d
		}()
		duel.PanicInvariant(state, "ship %s position is not finite", "A")
	}()

	if len(dump) == 0 {
		t.Fatalf("expected a non-empty diagnostic dump")
	}
	var decoded DiagnosticDump
	if err := json.Unmarshal(dump, &decoded); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if decoded.Turn != 7 {
		t.Errorf("Turn = %d, want 7", decoded.Turn)
	}
}

func TestDumpInvariantViolation_NoPanicIsNoop(t *testing.T) {
	dump, err := DumpInvariantViolation(nil)
	if dump != nil || err != nil {
		t.Errorf("expected (nil, nil) for no recovered panic, got (%v, %v)", dump, err)
	}
}
