package calculator

import (
	"errors"
	"math"
	"testing"

	"vc/model"
)

func closeTo(got, want, relTol float64) bool {
	if want == 0 {
		return math.Abs(got) <= relTol
	}
	return math.Abs(got-want) <= relTol*math.Abs(want)
}

// 基准设计点回归：70℃ 去离子水，150W，水平放置
func TestBaselineScenario(t *testing.T) {
	c := NewCalculator(0)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	r := c.BuildResult()

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"epsilon_evap", r.EvapWick.Epsilon, 0.68460388714},
		{"epsilon_cond", r.CondWick.Epsilon, 0.628945749576},
		{"pore_radius_evap", r.EvapWick.PoreRadius, 6.35e-05},
		{"permeability_evap", r.EvapWick.Permeability, 6.87679266572e-11},
		{"permeability_cond", r.CondWick.Permeability, 3.33263250067e-10},
		{"thickness_evap", r.EvapWick.Thickness, 0.00051},
		{"thickness_cond", r.CondWick.Thickness, 0.0015},
		{"l_eff", r.Flow.LEff, 0.0225},
		{"a_evap", r.Flow.AEvap, 0.0004},
		{"a_cond", r.Flow.ACond, 0.0045},
		{"d_hydraulic", r.Flow.DHydraulic, 0.00373748609566},
		{"charge_volume_ml", r.Flow.ChargeVolumeML, 4.722472912},
		{"dp_cap", r.Pressure.DPCap, 2028.34645669},
		{"dp_l_cond", r.Pressure.DPLCond, 8.55150331152},
		{"dp_l_evap", r.Pressure.DPLEvap, 121.889149281},
		{"dp_l", r.Pressure.DPL, 130.440652593},
		{"dp_v", r.Pressure.DPV, 2.03874055075},
		{"dp_total", r.Pressure.DPTotal, 132.479393144},
		{"q_max", r.Pressure.QMax, 2296.59844663},
		{"k_wick_evap", r.Resistance.KWickEvap, 1.28034321575},
		{"k_wick_cond", r.Resistance.KWickCond, 1.45180042934},
		{"r_total_ideal", r.Resistance.RTotalIdeal, 1.25154512159},
		{"r_total_corrected", r.Resistance.RTotalCorrected, 1.50185414591},
		{"delta_t", r.Resistance.DeltaT, 225.278121887},
	}
	for _, cs := range cases {
		if !closeTo(cs.got, cs.want, 1e-6) {
			t.Errorf("%s = %v, want %v", cs.name, cs.got, cs.want)
		}
	}

	if r.Pressure.DPG != 0 {
		t.Errorf("水平放置时 dP_g = %v, want 0", r.Pressure.DPG)
	}
	if !r.Pressure.LimitMet {
		t.Error("基准设计点毛细极限应满足")
	}
}

// 总热阻必须恰好等于五项分热阻之和
func TestResistanceSum(t *testing.T) {
	c := NewCalculator(0)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	rn := c.BuildResult().Resistance
	sum := rn.REvapWall + rn.REvapWick + rn.RPhaseChange + rn.RCondWick + rn.RCondWall
	if !closeTo(rn.RTotalIdeal, sum, 1e-9) {
		t.Errorf("RTotalIdeal = %v, 分项之和 = %v", rn.RTotalIdeal, sum)
	}
}

// 总压降必须恰好等于液相、蒸汽、重力三项之和
func TestPressureSum(t *testing.T) {
	c := NewCalculator(0)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	p := c.BuildResult().Pressure
	sum := p.DPL + p.DPV + p.DPG
	if !closeTo(p.DPTotal, sum, 1e-9) {
		t.Errorf("DPTotal = %v, 分项之和 = %v", p.DPTotal, sum)
	}
}

// 温升与修正热阻的闭环关系 dT = Q * R_corrected
func TestDeltaTRoundTrip(t *testing.T) {
	c := NewCalculator(0)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	r := c.BuildResult()
	want := r.Env.Operating.QIn * r.Resistance.RTotalCorrected
	if !closeTo(r.Resistance.DeltaT, want, 1e-9) {
		t.Errorf("DeltaT = %v, want %v", r.Resistance.DeltaT, want)
	}
}

// 结论与 Q_max 对比必须一致：满足时 Q_max >= Q_in，不满足时 Q_max < Q_in
func TestVerdictAgreesWithQMax(t *testing.T) {
	for _, qIn := range []float64{150, 1000, 2296, 2297, 5000} {
		c := NewCalculator(0)
		env := defaultEnv()
		env.Operating.QIn = qIn
		c.SetEnv(env)
		if err := c.Run(); err != nil {
			t.Fatal(err)
		}
		p := c.BuildResult().Pressure
		if p.LimitMet && p.QMax < qIn {
			t.Errorf("QIn=%v: 结论为满足但 QMax=%v < QIn", qIn, p.QMax)
		}
		if !p.LimitMet && p.QMax >= qIn {
			t.Errorf("QIn=%v: 结论为不满足但 QMax=%v >= QIn", qIn, p.QMax)
		}
	}
}

// 热负荷增大时液相、蒸汽压降严格增大，毛细压力、重力压降与 Q_max 不变
func TestHeatLoadMonotonicity(t *testing.T) {
	run := func(qIn float64) PressureBudget {
		c := NewCalculator(0)
		env := defaultEnv()
		env.Operating.QIn = qIn
		c.SetEnv(env)
		if err := c.Run(); err != nil {
			t.Fatal(err)
		}
		return c.BuildResult().Pressure
	}
	lo := run(150)
	hi := run(300)

	if hi.DPL <= lo.DPL {
		t.Errorf("dP_l 未随热负荷增大: %v -> %v", lo.DPL, hi.DPL)
	}
	if hi.DPV <= lo.DPV {
		t.Errorf("dP_v 未随热负荷增大: %v -> %v", lo.DPV, hi.DPV)
	}
	if hi.DPCap != lo.DPCap {
		t.Errorf("dP_cap 不应随热负荷变化: %v -> %v", lo.DPCap, hi.DPCap)
	}
	if hi.DPG != lo.DPG {
		t.Errorf("dP_g 不应随热负荷变化: %v -> %v", lo.DPG, hi.DPG)
	}
	if hi.QMax != lo.QMax {
		t.Errorf("Q_max 不应随热负荷变化: %v -> %v", lo.QMax, hi.QMax)
	}
}

// 单独下发吸液芯参数后上一次结果作废，重算结果必须反映新丝网
func TestSetWickSpecs(t *testing.T) {
	c := NewCalculator(0)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	baseline := c.BuildResult().Pressure

	// 蒸发端换成冷凝端的粗目丝网，毛细孔半径变大，毛细压力应下降
	c.SetEvapWick(model.WickSpec{MeshNumber: 80, WireDiameter: 0.00015, NumLayers: 5})
	if c.BuildResult() != nil {
		t.Error("下发新丝网参数后旧结果应作废")
	}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	coarse := c.BuildResult()
	if coarse.Pressure.DPCap >= baseline.DPCap {
		t.Errorf("粗目丝网 dP_cap 应下降: %v -> %v", baseline.DPCap, coarse.Pressure.DPCap)
	}
	if !closeTo(coarse.EvapWick.Epsilon, 0.628945749576, 1e-9) {
		t.Errorf("重算未反映新丝网: Epsilon = %v", coarse.EvapWick.Epsilon)
	}

	c.SetCondWick(model.WickSpec{MeshNumber: 200, WireDiameter: 0.000051, NumLayers: 5})
	if c.BuildResult() != nil {
		t.Error("下发新丝网参数后旧结果应作废")
	}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if !closeTo(c.BuildResult().CondWick.Epsilon, 0.68460388714, 1e-9) {
		t.Errorf("重算未反映新丝网: Epsilon = %v", c.BuildResult().CondWick.Epsilon)
	}
}

// 热源面积占满腔体面积时冷凝面积为零，必须报错而不是算出无穷大热阻
func TestCondenserAreaMustBePositive(t *testing.T) {
	c := NewCalculator(0)
	env := defaultEnv()
	env.Geometry.EvapLength = env.Geometry.VcLength
	env.Geometry.EvapWidth = env.Geometry.VcWidth
	c.SetEnv(env)
	err := c.Run()
	if !errors.Is(err, ErrNonPositiveArea) {
		t.Errorf("err = %v, want ErrNonPositiveArea", err)
	}
	if c.BuildResult() != nil {
		t.Error("检查未通过时不应产生结果")
	}
}

// πNd/4 >= 1 的丝网参数使孔隙率非正，必须报错
func TestPorosityMustBePhysical(t *testing.T) {
	c := NewCalculator(0)
	env := defaultEnv()
	env.EvapWick.WireDiameter = 0.001 // 200目配 1mm 丝径
	c.SetEnv(env)
	err := c.Run()
	if !errors.Is(err, ErrPorosityOutOfRange) {
		t.Errorf("err = %v, want ErrPorosityOutOfRange", err)
	}
}

// 倾角为正（冷凝端抬高）时重力项为正且削减 Q_max
func TestAdverseOrientation(t *testing.T) {
	c := NewCalculator(0)
	env := defaultEnv()
	env.Operating.PhiDeg = 90
	c.SetEnv(env)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	tilted := c.BuildResult().Pressure

	c2 := NewCalculator(0)
	if err := c2.Run(); err != nil {
		t.Fatal(err)
	}
	horizontal := c2.BuildResult().Pressure

	if tilted.DPG <= 0 {
		t.Errorf("竖直放置 dP_g = %v, 应为正", tilted.DPG)
	}
	if tilted.QMax >= horizontal.QMax {
		t.Errorf("重力不利时 QMax 应下降: %v -> %v", horizontal.QMax, tilted.QMax)
	}
}
