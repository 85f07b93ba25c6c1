package hyprtint

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type fakeColorizer struct {
	current ColorParameters
	applied []ColorParameters
	err     error
}

func (f *fakeColorizer) Current() (ColorParameters, error) {
	return f.current, nil
}

func (f *fakeColorizer) Apply(params ColorParameters) error {
	f.applied = append(f.applied, params)
	return f.err
}

func testConfig() Configuration {
	return Configuration{
		DefaultLayout:     "ENU",
		DefaultScheme:     ColorParameters{Color: 0xff0000ff},
		AlternativeScheme: ColorParameters{Color: 0xffff0000},
	}
}

func TestControllerAppliesWhileHidden(t *testing.T) {
	colorizer := &fakeColorizer{}
	cfg := testConfig()
	c := NewController(cfg, colorizer, zaptest.NewLogger(t).Sugar())

	if !c.HandleLayoutChange("ENU") {
		t.Fatal("expected apply for ENU")
	}
	if len(colorizer.applied) != 1 || colorizer.applied[0] != cfg.DefaultScheme {
		t.Fatalf("applied = %+v, want [%+v]", colorizer.applied, cfg.DefaultScheme)
	}

	if !c.HandleLayoutChange("RUS") {
		t.Fatal("expected apply for RUS")
	}
	if len(colorizer.applied) != 2 || colorizer.applied[1] != cfg.AlternativeScheme {
		t.Fatalf("applied = %+v, want second %+v", colorizer.applied, cfg.AlternativeScheme)
	}
}

func TestControllerSuppressedWhileVisible(t *testing.T) {
	colorizer := &fakeColorizer{}
	c := NewController(testConfig(), colorizer, zaptest.NewLogger(t).Sugar())
	c.Show()

	for _, layout := range []LayoutID{"ENU", "RUS", "DEU", "ENU"} {
		if c.HandleLayoutChange(layout) {
			t.Fatalf("HandleLayoutChange(%q) applied while visible", layout)
		}
	}
	if len(colorizer.applied) != 0 {
		t.Fatalf("applied %d schemes while visible", len(colorizer.applied))
	}

	c.Hide()
	c.HandleLayoutChange("RUS")
	if len(colorizer.applied) != 1 {
		t.Fatalf("applied %d schemes after hide, want 1", len(colorizer.applied))
	}
}

func TestControllerOneApplyPerEvent(t *testing.T) {
	colorizer := &fakeColorizer{}
	cfg := testConfig()
	c := NewController(cfg, colorizer, zaptest.NewLogger(t).Sugar())

	events := []LayoutID{"RUS", "RUS", "ENU", "DEU", "ENU"}
	for _, layout := range events {
		c.HandleLayoutChange(layout)
	}

	if len(colorizer.applied) != len(events) {
		t.Fatalf("applied %d schemes, want %d", len(colorizer.applied), len(events))
	}
	for i, layout := range events {
		if want := Decide(layout, cfg); colorizer.applied[i] != want {
			t.Fatalf("event %d (%q): applied %+v, want %+v", i, layout, colorizer.applied[i], want)
		}
	}
}

func TestControllerSwallowsApplyErrors(t *testing.T) {
	colorizer := &fakeColorizer{err: errors.New("unsupported")}
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewController(testConfig(), colorizer, zap.New(core).Sugar())

	if !c.HandleLayoutChange("RUS") {
		t.Fatal("expected apply attempt")
	}
	if !c.HandleLayoutChange("ENU") {
		t.Fatal("expected second apply attempt")
	}
	if len(colorizer.applied) != 2 {
		t.Fatalf("applied %d schemes, want 2", len(colorizer.applied))
	}

	failures := logs.FilterMessage("apply colorization")
	if failures.Len() != 2 {
		t.Fatalf("logged %d apply failures, want 2", failures.Len())
	}
	for _, entry := range failures.All() {
		if entry.Level != zapcore.DebugLevel {
			t.Fatalf("apply failure logged at %v, want debug", entry.Level)
		}
	}
}

func TestControllerUsesUpdatedConfiguration(t *testing.T) {
	colorizer := &fakeColorizer{}
	c := NewController(testConfig(), colorizer, zaptest.NewLogger(t).Sugar())

	updated := testConfig()
	updated.DefaultLayout = "RUS"
	c.SetConfiguration(updated)

	c.HandleLayoutChange("RUS")
	if colorizer.applied[0] != updated.DefaultScheme {
		t.Fatalf("applied %+v, want %+v", colorizer.applied[0], updated.DefaultScheme)
	}
	if c.Configuration() != updated {
		t.Fatalf("Configuration() = %+v, want %+v", c.Configuration(), updated)
	}
}

func TestStateString(t *testing.T) {
	if Hidden.String() != "hidden" || Visible.String() != "visible" {
		t.Fatalf("unexpected state names %q %q", Hidden, Visible)
	}
}
