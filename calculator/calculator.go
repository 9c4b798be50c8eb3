package calculator

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"vc/chamber"
	"vc/fluid"
	"vc/model"
)

// calculator 的接口定义

type Calculator interface {
	// 下发设计点参数
	SetEnv(env model.Env)

	// 吸液芯参数单独设置
	SetEvapWick(spec model.WickSpec)
	SetCondWick(spec model.WickSpec)

	// 运行单次稳态分析
	Run() error

	// 获取分析结果
	BuildResult() *Result

	// 生成文本报告
	Report() string
}

// 设计参数检查错误
// 参考模型不做任何校验，这里在计算前拦截退化输入，避免输出无物理意义的结果
var (
	ErrPorosityOutOfRange = errors.New("孔隙率超出 (0,1) 区间，检查目数与丝径")
	ErrNonPositiveArea    = errors.New("流通面积必须为正，热源面积不能大于等于腔体面积")
	ErrQMaxDenominator    = errors.New("Q_max 分母必须为正，检查流道几何")
)

// 单次分析的全部导出量
type Result struct {
	Env        model.Env         `json:"env"`
	Fluid      fluid.Properties  `json:"fluid"`
	EvapWick   WickProperties    `json:"evap_wick"`
	CondWick   WickProperties    `json:"cond_wick"`
	Flow       FlowGeometry      `json:"flow"`
	Pressure   PressureBudget    `json:"pressure"`
	Resistance ResistanceNetwork `json:"resistance"`
}

type vcCalculator struct {
	env     model.Env
	chamber *chamber.VaporChamber
	result  *Result
}

func NewCalculator(fluidNumber int) Calculator {
	env := defaultEnv()
	env.FluidNumber = fluidNumber
	c := &vcCalculator{env: env}
	c.chamber = chamber.NewVaporChamber(env.Geometry, env.EvapWick, env.CondWick)
	return c
}

// 基准设计点，取配置文件的值，缺省即参考设计点
func defaultEnv() model.Env {
	return model.Env{
		FluidNumber:      calCfg.FluidNumber,
		FillingRatio:     calCfg.FillingRatio,
		TargetVacuumPa:   calCfg.TargetVacuumPa,
		CorrectionFactor: calCfg.CorrectionFactor,
		Operating: model.OperatingPoint{
			TOp:    calCfg.TOp,
			QIn:    calCfg.QIn,
			PhiDeg: calCfg.PhiDeg,
		},
		Geometry: model.Geometry{
			VcLength:   calCfg.VcLength,
			VcWidth:    calCfg.VcWidth,
			TEvapWall:  calCfg.TEvapWall,
			TCondWall:  calCfg.TCondWall,
			TVapor:     calCfg.TVapor,
			EvapLength: calCfg.EvapLength,
			EvapWidth:  calCfg.EvapWidth,
			KShell:     calCfg.KShell,
		},
		EvapWick: model.WickSpec{
			MeshNumber:   calCfg.MeshNumberEvap,
			WireDiameter: calCfg.DWEvap,
			NumLayers:    calCfg.NumLayersEvap,
		},
		CondWick: model.WickSpec{
			MeshNumber:   calCfg.MeshNumberCond,
			WireDiameter: calCfg.DWCond,
			NumLayers:    calCfg.NumLayersCond,
		},
	}
}

func (c *vcCalculator) SetEnv(env model.Env) {
	c.env = env
	c.chamber.SetFromJson(env)
	c.result = nil
	log.WithFields(log.Fields{
		"TOp":    env.Operating.TOp,
		"QIn":    env.Operating.QIn,
		"PhiDeg": env.Operating.PhiDeg,
	}).Info("设置设计点参数")
}

func (c *vcCalculator) SetEvapWick(spec model.WickSpec) {
	c.env.EvapWick = spec
	c.chamber.SetEvapWick(spec)
	c.result = nil
}

func (c *vcCalculator) SetCondWick(spec model.WickSpec) {
	c.env.CondWick = spec
	c.chamber.SetCondWick(spec)
	c.result = nil
}

// 按依赖顺序走完整条计算链：
// 工质物性 -> 吸液芯特性 -> 流道几何 -> 压力平衡 -> 热阻网络
func (c *vcCalculator) Run() error {
	f := fluid.NewFluid(c.env.FluidNumber, c.env.Operating.TOp)

	evapWick := characterizeWick(c.chamber.EvapWick)
	condWick := characterizeWick(c.chamber.CondWick)
	flow := buildFlowGeometry(c.chamber.Geometry, evapWick, condWick, c.env.FillingRatio)
	if err := check(evapWick, condWick, flow); err != nil {
		return err
	}

	pressure := buildPressureBudget(c.env.Operating, f.Properties, evapWick, condWick, flow)
	if pressure.LiquidTerm+pressure.VaporTerm <= 0 {
		return ErrQMaxDenominator
	}

	resistance := buildResistanceNetwork(c.env.Operating, c.chamber.Geometry, f.Properties,
		evapWick, condWick, flow, c.env.CorrectionFactor)

	c.result = &Result{
		Env:        c.env,
		Fluid:      *f.Properties,
		EvapWick:   evapWick,
		CondWick:   condWick,
		Flow:       flow,
		Pressure:   pressure,
		Resistance: resistance,
	}
	log.WithFields(log.Fields{
		"QMax":            pressure.QMax,
		"LimitMet":        pressure.LimitMet,
		"RTotalCorrected": resistance.RTotalCorrected,
	}).Info("分析完成")
	return nil
}

func check(evapWick, condWick WickProperties, flow FlowGeometry) error {
	if evapWick.Epsilon <= 0 || evapWick.Epsilon >= 1 ||
		condWick.Epsilon <= 0 || condWick.Epsilon >= 1 {
		return ErrPorosityOutOfRange
	}
	if flow.AEvap <= 0 || flow.ACond <= 0 ||
		flow.AWickEvap <= 0 || flow.AWickCond <= 0 || flow.AVapor <= 0 {
		return ErrNonPositiveArea
	}
	return nil
}

func (c *vcCalculator) BuildResult() *Result {
	return c.result
}
