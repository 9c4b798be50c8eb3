package fluid

import (
	log "github.com/sirupsen/logrus"
)

// 工质饱和物性表
// 物性按运行温度在表节点之间线性插值，设计点温度正好落在节点上时直接取节点值

type Fluid struct {
	Number     int
	Name       string
	Properties *Properties
}

// 运行温度下的工质物性
type Properties struct {
	RhoL     float64 `json:"rho_l"`     // 液相密度 kg/m3
	RhoV     float64 `json:"rho_v"`     // 汽相密度 kg/m3
	MuL      float64 `json:"mu_l"`      // 液相动力粘度 Pa·s
	MuV      float64 `json:"mu_v"`      // 汽相动力粘度 Pa·s
	Sigma    float64 `json:"sigma"`     // 表面张力 N/m
	Hfg      float64 `json:"h_fg"`      // 汽化潜热 J/kg
	KL       float64 `json:"k_l"`       // 液相导热系数 W/(m·K)
	ThetaDeg float64 `json:"theta_deg"` // 接触角 deg
}

type tableRow struct {
	t float64 // K
	p Properties
}

// 去离子水，40℃ ~ 90℃
var waterTable = []tableRow{
	{313.15, Properties{992.2, 0.0512, 6.53e-4, 9.89e-6, 0.0696, 2.406e6, 0.631, 0}},
	{323.15, Properties{988.0, 0.0831, 5.47e-4, 1.02e-5, 0.0679, 2.382e6, 0.644, 0}},
	{333.15, Properties{983.2, 0.1302, 4.67e-4, 1.05e-5, 0.0662, 2.358e6, 0.654, 0}},
	{343.15, Properties{977.8, 0.198, 4.04e-4, 1.09e-5, 0.0644, 2.33e6, 0.668, 0}},
	{353.15, Properties{971.8, 0.2934, 3.55e-4, 1.12e-5, 0.0626, 2.308e6, 0.670, 0}},
	{363.15, Properties{965.3, 0.4235, 3.15e-4, 1.16e-5, 0.0608, 2.283e6, 0.675, 0}},
}

// 根据工质编号获取工质物性
// todo 按编号接入其他工质（甲醇、丙酮）的物性表
func NewFluid(number int, tOp float64) *Fluid {
	p := atTemperature(waterTable, tOp)
	f := Fluid{
		Number:     number,
		Name:       "去离子水",
		Properties: &p,
	}
	log.WithFields(log.Fields{
		"Number": number,
		"Name":   f.Name,
		"TOp":    tOp,
	}).Info("加载工质物性")
	return &f
}

func atTemperature(table []tableRow, t float64) Properties {
	// 超出表界时取边界节点值
	if t <= table[0].t {
		return table[0].p
	}
	if t >= table[len(table)-1].t {
		return table[len(table)-1].p
	}
	for i := 0; i < len(table)-1; i++ {
		if t == table[i].t {
			return table[i].p
		}
		if t < table[i+1].t {
			w := (t - table[i].t) / (table[i+1].t - table[i].t)
			return lerp(table[i].p, table[i+1].p, w)
		}
	}
	return table[len(table)-1].p
}

func lerp(a, b Properties, w float64) Properties {
	return Properties{
		RhoL:     a.RhoL + (b.RhoL-a.RhoL)*w,
		RhoV:     a.RhoV + (b.RhoV-a.RhoV)*w,
		MuL:      a.MuL + (b.MuL-a.MuL)*w,
		MuV:      a.MuV + (b.MuV-a.MuV)*w,
		Sigma:    a.Sigma + (b.Sigma-a.Sigma)*w,
		Hfg:      a.Hfg + (b.Hfg-a.Hfg)*w,
		KL:       a.KL + (b.KL-a.KL)*w,
		ThetaDeg: a.ThetaDeg + (b.ThetaDeg-a.ThetaDeg)*w,
	}
}
