package bench

import (
	"context"
	"testing"

	"github.com/rzbill/fastuuid/pkg/fastuuid"
)

func TestRunAllModesUnique(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			g := fastuuid.MustNewGenerator()
			rep, err := Run(context.Background(), g, Options{Workers: 8, PerWorker: 2000, Mode: mode, Check: true}, nil)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if rep.Total != 16000 {
				t.Fatalf("total = %d", rep.Total)
			}
			if !rep.Unique() {
				t.Fatalf("expected unique values, distinct=%d", rep.Distinct)
			}
			if rep.NsPerOp <= 0 {
				t.Fatalf("ns/op = %v", rep.NsPerOp)
			}
		})
	}
}

func TestRunHundredGoroutinesOneEach(t *testing.T) {
	g := fastuuid.MustNewGenerator()
	rep, err := Run(context.Background(), g, Options{Workers: 100, PerWorker: 1, Mode: ModeString, Check: true}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Distinct != 100 {
		t.Fatalf("distinct = %d", rep.Distinct)
	}
}

func TestRunWithoutCheck(t *testing.T) {
	g := fastuuid.MustNewGenerator()
	rep, err := Run(context.Background(), g, Options{Workers: 2, PerWorker: 10}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Mode != ModeNext || rep.Checked || rep.Unique() {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, fastuuid.MustNewGenerator(), Options{Workers: 2, PerWorker: 10}, nil)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestRunValidation(t *testing.T) {
	g := fastuuid.MustNewGenerator()
	if _, err := Run(context.Background(), g, Options{Workers: 0, PerWorker: 1}, nil); err == nil {
		t.Fatalf("expected error for zero workers")
	}
	if _, err := Run(context.Background(), g, Options{Workers: 1, PerWorker: 1, Mode: "fast"}, nil); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := ParseMode("hex128"); err != nil {
		t.Fatalf("parse: %v", err)
	}
}
