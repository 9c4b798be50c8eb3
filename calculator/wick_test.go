package calculator

import (
	"testing"

	"vc/model"
)

// 两端丝网的孔隙率都必须落在 (0,1) 区间内
func TestPorosityBounds(t *testing.T) {
	specs := []model.WickSpec{
		{MeshNumber: 200, WireDiameter: 0.000051, NumLayers: 5},
		{MeshNumber: 80, WireDiameter: 0.00015, NumLayers: 5},
	}
	for _, spec := range specs {
		w := characterizeWick(spec)
		if w.Epsilon <= 0 || w.Epsilon >= 1 {
			t.Errorf("目数 %v: 孔隙率 = %v, 超出 (0,1)", spec.MeshNumber, w.Epsilon)
		}
	}
}

func TestMeshPerMeter(t *testing.T) {
	// 200 wpi = 200/0.0254 每米丝数
	if !closeTo(meshPerMeter(200), 7874.01574803, 1e-9) {
		t.Errorf("meshPerMeter(200) = %v", meshPerMeter(200))
	}
}

func TestCharacterizeEvapWick(t *testing.T) {
	w := characterizeWick(model.WickSpec{MeshNumber: 200, WireDiameter: 0.000051, NumLayers: 5})
	if !closeTo(w.Epsilon, 0.68460388714, 1e-9) {
		t.Errorf("Epsilon = %v", w.Epsilon)
	}
	if !closeTo(w.PoreRadius, 6.35e-05, 1e-9) {
		t.Errorf("PoreRadius = %v", w.PoreRadius)
	}
	if !closeTo(w.Permeability, 6.87679266572e-11, 1e-9) {
		t.Errorf("Permeability = %v", w.Permeability)
	}
	if !closeTo(w.Thickness, 0.00051, 1e-12) {
		t.Errorf("Thickness = %v", w.Thickness)
	}
}

func TestCharacterizeCondWick(t *testing.T) {
	w := characterizeWick(model.WickSpec{MeshNumber: 80, WireDiameter: 0.00015, NumLayers: 5})
	if !closeTo(w.Epsilon, 0.628945749576, 1e-9) {
		t.Errorf("Epsilon = %v", w.Epsilon)
	}
	if !closeTo(w.Permeability, 3.33263250067e-10, 1e-9) {
		t.Errorf("Permeability = %v", w.Permeability)
	}
	if !closeTo(w.Thickness, 0.0015, 1e-12) {
		t.Errorf("Thickness = %v", w.Thickness)
	}
}
