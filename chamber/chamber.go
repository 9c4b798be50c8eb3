package chamber

import (
	log "github.com/sirupsen/logrus"

	"vc/model"
)

// 均热板的规格：腔体外形 + 两端丝网吸液芯配置

type VaporChamber struct {
	Geometry model.Geometry
	EvapWick model.WickSpec // 蒸发端丝网
	CondWick model.WickSpec // 冷凝端丝网
}

func NewVaporChamber(geometry model.Geometry, evapWick, condWick model.WickSpec) *VaporChamber {
	vaporChamber := VaporChamber{
		Geometry: geometry,
		EvapWick: evapWick,
		CondWick: condWick,
	}
	log.WithFields(log.Fields{
		"VcLength":   geometry.VcLength,
		"VcWidth":    geometry.VcWidth,
		"TVapor":     geometry.TVapor,
		"EvapLength": geometry.EvapLength,
		"EvapWidth":  geometry.EvapWidth,
	}).Info("初始化均热板规格")
	return &vaporChamber
}

func (c *VaporChamber) SetFromJson(env model.Env) {
	c.Geometry = env.Geometry
	c.EvapWick = env.EvapWick
	c.CondWick = env.CondWick
	log.WithFields(log.Fields{
		"VcLength":       env.Geometry.VcLength,
		"VcWidth":        env.Geometry.VcWidth,
		"TEvapWall":      env.Geometry.TEvapWall,
		"TCondWall":      env.Geometry.TCondWall,
		"TVapor":         env.Geometry.TVapor,
		"MeshNumberEvap": env.EvapWick.MeshNumber,
		"MeshNumberCond": env.CondWick.MeshNumber,
	}).Info("设置均热板规格")
}

// 吸液芯参数单独设置
func (c *VaporChamber) SetEvapWick(spec model.WickSpec) {
	c.EvapWick = spec
}

func (c *VaporChamber) SetCondWick(spec model.WickSpec) {
	c.CondWick = spec
}

// 内腔平面面积
func (c *VaporChamber) InternalArea() float64 {
	return c.Geometry.VcLength * c.Geometry.VcWidth
}
