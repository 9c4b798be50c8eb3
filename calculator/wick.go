package calculator

import (
	"math"

	"vc/model"
)

// 丝网吸液芯特性计算
// 均为闭式关联式，输入的物理有效性由调用方保证（孔隙率公式要求 πNd/4 < 1）

const inToM = 0.0254 // 英寸转米

// 吸液芯特性参数
type WickProperties struct {
	MeshNumber   float64 `json:"mesh_number"`  // 目数换算后，每米丝数
	Epsilon      float64 `json:"epsilon"`      // 孔隙率
	PoreRadius   float64 `json:"pore_radius"`  // 有效毛细孔半径 m
	Permeability float64 `json:"permeability"` // 渗透率 m2
	Thickness    float64 `json:"thickness"`    // 总厚度 m
}

// 目数换算：每英寸丝数 -> 每米丝数
func meshPerMeter(meshNumber float64) float64 {
	return meshNumber / inToM
}

// 孔隙率 ε = 1 - πNd/4
func porosity(meshNumber, wireDiameter float64) float64 {
	return 1 - (math.Pi*meshNumber*wireDiameter)/4
}

// 有效毛细孔半径 rc = 1/(2N)
func poreRadius(meshNumber float64) float64 {
	return 1 / (2 * meshNumber)
}

// 渗透率，丝网的 Blake-Kozeny 关联式 K = d²ε³/(122(1-ε)²)
func permeability(wireDiameter, epsilon float64) float64 {
	return (wireDiameter * wireDiameter * epsilon * epsilon * epsilon) /
		(122 * (1 - epsilon) * (1 - epsilon))
}

// 吸液芯总厚度 t = 2 * 丝径 * 层数
func wickThickness(wireDiameter float64, numLayers int) float64 {
	return 2 * wireDiameter * float64(numLayers)
}

func characterizeWick(spec model.WickSpec) WickProperties {
	n := meshPerMeter(spec.MeshNumber)
	epsilon := porosity(n, spec.WireDiameter)
	return WickProperties{
		MeshNumber:   n,
		Epsilon:      epsilon,
		PoreRadius:   poreRadius(n),
		Permeability: permeability(spec.WireDiameter, epsilon),
		Thickness:    wickThickness(spec.WireDiameter, spec.NumLayers),
	}
}
