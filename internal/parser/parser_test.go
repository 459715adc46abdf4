package parser

import (
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func TestClassifyBuy(t *testing.T) {
	cases := []struct {
		equip int
		round int
		want  string
	}{
		{1000, 1, model.BuyPistol},
		{30000, 13, model.BuyPistol},
		{4000, 2, model.BuyFullEco},
		{8000, 5, model.BuySemiEco},
		{15000, 5, model.BuySemiBuy},
		{26000, 5, model.BuyFullBuy},
	}
	for _, c := range cases {
		if got := classifyBuy(c.equip, c.round); got != c.want {
			t.Errorf("classifyBuy(%d, %d) = %q, want %q", c.equip, c.round, got, c.want)
		}
	}
}

func TestIsPistolRound(t *testing.T) {
	for _, r := range []int{1, 13} {
		if !isPistolRound(r) {
			t.Errorf("round %d should be a pistol round", r)
		}
	}
	for _, r := range []int{2, 12, 14, 24} {
		if isPistolRound(r) {
			t.Errorf("round %d should not be a pistol round", r)
		}
	}
}

func TestParseDemoMissingFile(t *testing.T) {
	if _, err := ParseDemo("does-not-exist.dem"); err == nil {
		t.Fatal("expected error for missing demo")
	}
}
