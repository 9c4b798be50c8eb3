package calculator

import (
	"math"

	"vc/fluid"
	"vc/model"
)

// 毛细压力平衡与最大传热量计算

const (
	cVapor  = 96   // 矩形蒸汽通道层流摩擦常数
	gravity = 9.81 // 重力加速度 m/s2
)

// 角度转弧度
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

type PressureBudget struct {
	DPCap   float64 `json:"dp_cap"`    // 最大毛细压力 Pa
	DPLCond float64 `json:"dp_l_cond"` // 冷凝端吸液芯液相压降 Pa
	DPLEvap float64 `json:"dp_l_evap"` // 蒸发端吸液芯液相压降 Pa
	DPL     float64 `json:"dp_l"`      // 液相压降合计 Pa
	DPV     float64 `json:"dp_v"`      // 蒸汽压降 Pa
	DPG     float64 `json:"dp_g"`      // 重力压降 Pa，水平放置时为 0
	DPTotal float64 `json:"dp_total"`  // 总压降 Pa

	// 液相、蒸汽压降与热负荷成线性关系，系数单位 Pa/W
	LiquidTerm float64 `json:"liquid_term"`
	VaporTerm  float64 `json:"vapor_term"`

	QMax     float64 `json:"q_max"`     // 最大传热量 W
	LimitMet bool    `json:"limit_met"` // 毛细极限是否满足
}

// 毛细压力取蒸发端丝网的有效孔半径，冷凝端孔径不参与
// （与参考模型保持一致，两端丝网其余特性仍独立计算）
func buildPressureBudget(op model.OperatingPoint, props *fluid.Properties, evapWick, condWick WickProperties, geo FlowGeometry) PressureBudget {
	phi := radians(op.PhiDeg)
	theta := radians(props.ThetaDeg)

	dpCap := (2 * props.Sigma * math.Cos(theta)) / evapWick.PoreRadius

	// 达西流动压降的单位热负荷系数，Q 通过 m = Q/h_fg 换算为质量流量
	liquidTermCond := (props.MuL * (geo.LEff / 2)) /
		(props.RhoL * geo.AWickCond * condWick.Permeability * props.Hfg)
	liquidTermEvap := (props.MuL * (geo.LEff / 2)) /
		(props.RhoL * geo.AWickEvap * evapWick.Permeability * props.Hfg)
	liquidTerm := liquidTermCond + liquidTermEvap
	vaporTerm := (cVapor * props.MuV * geo.LEff) /
		(2 * props.RhoV * geo.AVapor * geo.DHydraulic * geo.DHydraulic * props.Hfg)

	dpLCond := liquidTermCond * op.QIn
	dpLEvap := liquidTermEvap * op.QIn
	dpL := dpLCond + dpLEvap
	dpV := vaporTerm * op.QIn
	dpG := props.RhoL * gravity * geo.LEff * math.Sin(phi)
	dpTotal := dpL + dpV + dpG

	// 重力项与 Q 无关，先从毛细压力预算中扣除
	qMax := (dpCap - dpG) / (liquidTerm + vaporTerm)

	return PressureBudget{
		DPCap:      dpCap,
		DPLCond:    dpLCond,
		DPLEvap:    dpLEvap,
		DPL:        dpL,
		DPV:        dpV,
		DPG:        dpG,
		DPTotal:    dpTotal,
		LiquidTerm: liquidTerm,
		VaporTerm:  vaporTerm,
		QMax:       qMax,
		LimitMet:   dpCap >= dpTotal,
	}
}
