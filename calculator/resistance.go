package calculator

import (
	"vc/fluid"
	"vc/model"
)

// 蒸发端到冷凝端的串联热阻网络

// 相变界面热阻，经验值 K/W
const rPhaseChange = 0.01

type ResistanceNetwork struct {
	KWickEvap float64 `json:"k_wick_evap"` // 蒸发端吸液芯等效导热系数 W/(m·K)
	KWickCond float64 `json:"k_wick_cond"` // 冷凝端吸液芯等效导热系数 W/(m·K)

	REvapWall    float64 `json:"r_evap_wall"`    // 蒸发端壁面热阻 K/W
	REvapWick    float64 `json:"r_evap_wick"`    // 蒸发端吸液芯热阻 K/W
	RPhaseChange float64 `json:"r_phase_change"` // 相变界面热阻 K/W
	RCondWick    float64 `json:"r_cond_wick"`    // 冷凝端吸液芯热阻 K/W
	RCondWall    float64 `json:"r_cond_wall"`    // 冷凝端壁面热阻 K/W

	RTotalIdeal     float64 `json:"r_total_ideal"`     // 理想总热阻 K/W
	RTotalCorrected float64 `json:"r_total_corrected"` // 修正后总热阻 K/W
	DeltaT          float64 `json:"delta_t"`           // 预测温升 K
}

// Maxwell 两相混合模型：壳体固相与液相工质的等效导热系数
func wickConductivity(kl, ks, epsilon float64) float64 {
	return kl * ((ks + kl + (1-epsilon)*(ks-kl)) /
		(ks + kl - (1-epsilon)*(ks-kl)))
}

// 平板导热热阻 R = t/(kA)
func planarResistance(thickness, k, area float64) float64 {
	return thickness / (k * area)
}

func buildResistanceNetwork(op model.OperatingPoint, geo model.Geometry, props *fluid.Properties,
	evapWick, condWick WickProperties, flow FlowGeometry, correctionFactor float64) ResistanceNetwork {

	kWickEvap := wickConductivity(props.KL, geo.KShell, evapWick.Epsilon)
	kWickCond := wickConductivity(props.KL, geo.KShell, condWick.Epsilon)

	rEvapWall := planarResistance(geo.TEvapWall, geo.KShell, flow.AEvap)
	rEvapWick := planarResistance(evapWick.Thickness, kWickEvap, flow.AEvap)
	rCondWick := planarResistance(condWick.Thickness, kWickCond, flow.ACond)
	rCondWall := planarResistance(geo.TCondWall, geo.KShell, flow.ACond)

	rTotalIdeal := rEvapWall + rEvapWick + rPhaseChange + rCondWick + rCondWall
	rTotalCorrected := rTotalIdeal * correctionFactor

	return ResistanceNetwork{
		KWickEvap:       kWickEvap,
		KWickCond:       kWickCond,
		REvapWall:       rEvapWall,
		REvapWick:       rEvapWick,
		RPhaseChange:    rPhaseChange,
		RCondWick:       rCondWick,
		RCondWall:       rCondWall,
		RTotalIdeal:     rTotalIdeal,
		RTotalCorrected: rTotalCorrected,
		DeltaT:          op.QIn * rTotalCorrected,
	}
}
