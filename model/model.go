package model

// 运行工况（边界条件）
type OperatingPoint struct {
	TOp    float64 `json:"t_op"`    // 运行温度 K
	QIn    float64 `json:"q_in"`    // 目标热负荷 W
	PhiDeg float64 `json:"phi_deg"` // 倾角 deg，0 为水平放置
}

// 均热板腔体几何尺寸，单位 m
type Geometry struct {
	VcLength   float64 `json:"vc_length"`   // 腔体长度
	VcWidth    float64 `json:"vc_width"`    // 腔体宽度
	TEvapWall  float64 `json:"t_evap_wall"` // 蒸发端壁厚
	TCondWall  float64 `json:"t_cond_wall"` // 冷凝端壁厚
	TVapor     float64 `json:"t_vapor"`     // 蒸汽腔厚度
	EvapLength float64 `json:"evap_length"` // 热源长度
	EvapWidth  float64 `json:"evap_width"`  // 热源宽度
	KShell     float64 `json:"k_shell"`     // 壳体导热系数 W/(m·K)
}

// 丝网吸液芯规格
type WickSpec struct {
	MeshNumber   float64 `json:"mesh_number"`   // 目数，每英寸丝数
	WireDiameter float64 `json:"wire_diameter"` // 丝径 m
	NumLayers    int     `json:"num_layers"`    // 层数
}

// 前端下发的设计点参数
type Env struct {
	FluidNumber      int            `json:"fluid_number"`      // 工质编号
	FillingRatio     float64        `json:"filling_ratio"`     // 充液率
	TargetVacuumPa   float64        `json:"target_vacuum_pa"`  // 目标初始真空度 Pa
	CorrectionFactor float64        `json:"correction_factor"` // 实验修正系数
	Operating        OperatingPoint `json:"operating"`
	Geometry         Geometry       `json:"geometry"`
	EvapWick         WickSpec       `json:"evap_wick"` // 蒸发端丝网
	CondWick         WickSpec       `json:"cond_wick"` // 冷凝端丝网
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
