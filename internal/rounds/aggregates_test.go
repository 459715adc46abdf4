package rounds

import (
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func round(ct, t, winner, ctBuy, tBuy string) model.RoundData {
	return model.RoundData{
		CTTeamClanName: ct,
		TTeamClanName:  t,
		WinnerClanName: winner,
		CTBuyType:      ctBuy,
		TBuyType:       tBuy,
	}
}

func TestEcoForceConversion(t *testing.T) {
	rounds := []model.RoundData{
		round("A", "B", "A", model.BuyFullEco, model.BuyFullBuy),
		round("A", "B", "B", model.BuySemiBuy, model.BuyFullBuy),
		round("A", "B", "A", model.BuyFullBuy, model.BuyFullBuy), // not a reduced buy for A
	}
	// A played 2 reduced-buy rounds, won 1.
	if got := EcoForceConversion(rounds, "A"); got != 0.5 {
		t.Errorf("conversion = %v, want 0.5", got)
	}
}

func TestEcoForceConversionNoAttempts(t *testing.T) {
	rounds := []model.RoundData{
		round("A", "B", "A", model.BuyFullBuy, model.BuyFullBuy),
	}
	if got := EcoForceConversion(rounds, "A"); got != 0 {
		t.Errorf("no reduced buys should yield 0, got %v", got)
	}
	if got := EcoForceConversion(nil, "A"); got != 0 {
		t.Errorf("no rounds should yield 0, got %v", got)
	}
}

func TestFiveVFourConversion(t *testing.T) {
	r1 := round("A", "B", "A", model.BuyFullBuy, model.BuyFullBuy)
	r1.Advantage5v4 = "ct"
	r2 := round("A", "B", "B", model.BuyFullBuy, model.BuyFullBuy)
	r2.Advantage5v4 = "ct"
	r3 := round("B", "A", "A", model.BuyFullBuy, model.BuyFullBuy)
	r3.Advantage5v4 = "t" // A on T side held the advantage

	rounds := []model.RoundData{r1, r2, r3}
	// A held the opening advantage 3 times and converted 2.
	if got := FiveVFourConversion(rounds, "A"); got < 0.66 || got > 0.67 {
		t.Errorf("conversion = %v, want 2/3", got)
	}
	if got := FiveVFourConversion(rounds, "C"); got != 0 {
		t.Errorf("uninvolved team should yield 0, got %v", got)
	}
}

func TestRifleRoundWinRate(t *testing.T) {
	rounds := []model.RoundData{
		round("A", "B", "A", model.BuyFullBuy, model.BuyFullBuy),
		round("A", "B", "B", model.BuyFullBuy, model.BuyFullBuy),
		round("A", "B", "A", model.BuyFullEco, model.BuyFullBuy),
	}
	if got := RifleRoundWinRate(rounds, "A"); got != 0.5 {
		t.Errorf("rifle win rate = %v, want 0.5", got)
	}
	if got := RifleRoundWinRate(rounds, "B"); got < 0.33 || got > 0.34 {
		t.Errorf("rifle win rate = %v, want 1/3", got)
	}
}

func TestEconomicEfficiency(t *testing.T) {
	r1 := round("A", "B", "A", model.BuyFullBuy, model.BuyFullBuy)
	r1.CTTeamCurrentEquipValue = 20000
	r2 := round("A", "B", "B", model.BuyFullBuy, model.BuyFullBuy)
	r2.CTTeamCurrentEquipValue = 20000

	rounds := []model.RoundData{r1, r2}
	// 1 win over 40000 equipment: 1 / 40 = 0.025 wins per 1000.
	if got := EconomicEfficiency(rounds, "A"); got != 0.025 {
		t.Errorf("efficiency = %v, want 0.025", got)
	}
	if got := EconomicEfficiency(nil, "A"); got != 0 {
		t.Errorf("no rounds should yield 0, got %v", got)
	}
}
