package calculator

import (
	"vc/model"
)

// 流道几何与充液量计算

type FlowGeometry struct {
	AEvap      float64 `json:"a_evap"`      // 蒸发面积 m2
	ACond      float64 `json:"a_cond"`      // 冷凝面积 m2（腔体面积扣除热源面积）
	AWickEvap  float64 `json:"a_wick_evap"` // 蒸发端吸液芯流通截面 m2
	AWickCond  float64 `json:"a_wick_cond"` // 冷凝端吸液芯流通截面 m2
	AVapor     float64 `json:"a_vapor"`     // 蒸汽腔流通截面 m2
	DHydraulic float64 `json:"d_hydraulic"` // 蒸汽腔水力直径 m
	LEff       float64 `json:"l_eff"`       // 有效流动长度 m

	VolVaporSpace    float64 `json:"vol_vapor_space"`    // 蒸汽腔容积 m3
	VolEvapWickPore  float64 `json:"vol_evap_wick_pore"` // 蒸发端吸液芯孔隙容积 m3
	VolCondWickPore  float64 `json:"vol_cond_wick_pore"` // 冷凝端吸液芯孔隙容积 m3
	VolInternalTotal float64 `json:"vol_internal_total"` // 内腔总容积 m3
	ChargeVolumeML   float64 `json:"charge_volume_ml"`   // 充液量 mL
}

func buildFlowGeometry(geo model.Geometry, evapWick, condWick WickProperties, fillingRatio float64) FlowGeometry {
	internalArea := geo.VcLength * geo.VcWidth
	aEvap := geo.EvapLength * geo.EvapWidth

	volVaporSpace := internalArea * geo.TVapor
	volEvapWickPore := internalArea * evapWick.Thickness * evapWick.Epsilon
	volCondWickPore := internalArea * condWick.Thickness * condWick.Epsilon
	volInternalTotal := volVaporSpace + volEvapWickPore + volCondWickPore

	return FlowGeometry{
		AEvap:     aEvap,
		ACond:     internalArea - aEvap,
		AWickEvap: evapWick.Thickness * geo.VcWidth,
		AWickCond: condWick.Thickness * geo.VcWidth,
		AVapor:    geo.TVapor * geo.VcWidth,
		// 平行平板水力直径
		DHydraulic: (2 * geo.TVapor * geo.VcWidth) / (geo.TVapor + geo.VcWidth),
		// 流动路径按冷凝端与蒸发端半长之和的四分之一取
		LEff: (geo.VcLength + geo.EvapLength) / 4,

		VolVaporSpace:    volVaporSpace,
		VolEvapWickPore:  volEvapWickPore,
		VolCondWickPore:  volCondWickPore,
		VolInternalTotal: volInternalTotal,
		ChargeVolumeML:   volInternalTotal * fillingRatio * 1e6,
	}
}
