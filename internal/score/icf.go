package score

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
)

// ICF computes the Individual Consistency Factor from a player's K/D.
// Sigma is the inverse-consistency estimate; lower sigma means steadier
// output. The high-K/D boost is applied before the IGL/K-D-bonus branch,
// and IGL status excludes the non-IGL bonus.
func ICF(stats *model.PlayerRawStats, isIGL bool) model.ICFMetric {
	kd := stats.KDRatio()

	var sigma float64
	switch {
	case kd >= 1.4:
		sigma = 0.3
	case kd >= 1.2:
		sigma = 0.5
	case kd >= 1.0:
		sigma = math.Abs(1-kd) * 1.2
	default:
		sigma = math.Abs(1-kd) * 1.8
	}

	icf := 1 / (1 + sigma)

	if kd > 1.3 {
		boost := 1 + (kd-1.3)*0.5
		icf = math.Min(icf*boost, 1.0)
	}

	if isIGL {
		// IGLs trade fragging consistency for calling duty.
		reduction := 0.75
		if kd >= 1.2 {
			reduction = 0.85
		}
		icf *= reduction
	} else if kd > 1.2 {
		icf = math.Min(icf+(kd-1.2)*0.25, 1.0)
	}

	return model.ICFMetric{Value: icf, Sigma: sigma}
}
