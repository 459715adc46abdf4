package score

import (
	"math"
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func icfFor(kd float64, isIGL bool) model.ICFMetric {
	return ICF(&model.PlayerRawStats{KD: kd}, isIGL)
}

func TestICFGoldenValues(t *testing.T) {
	// kd 1.5, non-IGL: sigma 0.3, base 1/1.3, boost 1.1, bonus +0.075.
	got := icfFor(1.5, false)
	if math.Abs(got.Value-0.9211538461538461) > 1e-12 {
		t.Errorf("icf(1.5) = %.16f, want 0.9211538461538461", got.Value)
	}
	if got.Sigma != 0.3 {
		t.Errorf("sigma = %v, want 0.3", got.Sigma)
	}

	// kd 1.3, IGL: sigma 0.5, base 2/3, reduction 0.85.
	got = icfFor(1.3, true)
	if math.Abs(got.Value-0.5666666666666667) > 1e-12 {
		t.Errorf("igl icf(1.3) = %.16f, want 0.5666666666666667", got.Value)
	}
}

func TestICFSigmaLadder(t *testing.T) {
	cases := []struct {
		kd    float64
		sigma float64
	}{
		{1.4, 0.3},
		{1.25, 0.5},
		{1.2, 0.5},
		{1.1, 0.12},
		{1.0, 0.0},
		{0.8, 0.36},
	}
	for _, c := range cases {
		got := icfFor(c.kd, false)
		if math.Abs(got.Sigma-c.sigma) > 1e-9 {
			t.Errorf("sigma(%v) = %v, want %v", c.kd, got.Sigma, c.sigma)
		}
	}
}

func TestICFNeverExceedsOne(t *testing.T) {
	for _, kd := range []float64{0.5, 1.0, 1.3, 1.5, 2.0, 3.0} {
		if got := icfFor(kd, false); got.Value > 1.0 {
			t.Errorf("icf(%v) = %v exceeds 1", kd, got.Value)
		}
	}
}

func TestICFIGLReductionBranches(t *testing.T) {
	// IGLs never receive the non-IGL kd bonus, only the reduction.
	low := icfFor(1.1, true)
	base := 1 / (1 + 0.12)
	if math.Abs(low.Value-base*0.75) > 1e-9 {
		t.Errorf("igl icf(1.1) = %v, want %v", low.Value, base*0.75)
	}

	// At kd >= 1.2 the reduction softens to 0.85.
	mid := icfFor(1.2, true)
	if math.Abs(mid.Value-(1/1.5)*0.85) > 1e-9 {
		t.Errorf("igl icf(1.2) = %v, want %v", mid.Value, (1/1.5)*0.85)
	}
}

func TestICFDerivesKDWhenMissing(t *testing.T) {
	// No precomputed KD: falls back to kills/deaths.
	stats := &model.PlayerRawStats{Kills: 150, Deaths: 100}
	got := ICF(stats, false)
	want := icfFor(1.5, false)
	if got.Value != want.Value {
		t.Errorf("derived-kd icf = %v, want %v", got.Value, want.Value)
	}
}
