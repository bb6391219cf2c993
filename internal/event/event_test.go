package event

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	q.Emit(Wave, 2)
	q.Push(Event{Type: MissileCooldown, Value: 0.5})
	q.Emit(Score, 40)

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}

	got := q.Drain(nil)
	want := []Type{Wave, MissileCooldown, Score}
	if len(got) != len(want) {
		t.Fatalf("drained %d events, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Type != want[i] {
			t.Fatalf("event %d = %v, want %v", i, e.Type, want[i])
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain")
	}

	buf := got[:0]
	q.Emit(Kill, 1)
	buf = q.Drain(buf)
	if len(buf) != 1 || buf[0].Type != Kill {
		t.Fatalf("second drain = %v, want one kill", buf)
	}
}

func TestTypeString(t *testing.T) {
	if BossWave.String() != "boss_wave" {
		t.Fatalf("BossWave.String() = %q", BossWave.String())
	}
	if Type(200).String() != "unknown" {
		t.Fatalf("out-of-range type should be unknown")
	}
}
