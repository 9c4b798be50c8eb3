package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var calCfg Config

// 设计点配置
// 每个键都有默认值，配置文件缺失时直接按基准设计点计算
type Config struct {
	// 运行工况
	TOp    float64
	QIn    float64
	PhiDeg float64

	// 制造与标定参数
	FluidNumber      int
	FillingRatio     float64
	TargetVacuumPa   float64
	CorrectionFactor float64

	// 腔体几何，单位 m
	VcLength   float64
	VcWidth    float64
	TEvapWall  float64
	TCondWall  float64
	TVapor     float64
	EvapLength float64
	EvapWidth  float64
	KShell     float64

	// 蒸发端丝网
	MeshNumberEvap float64
	DWEvap         float64
	NumLayersEvap  int

	// 冷凝端丝网
	MeshNumberCond float64
	DWCond         float64
	NumLayersCond  int

	// 结果输出
	ChartPath    string
	ServerEnable bool
	ServerAddr   string
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		fmt.Println("配置文件读取错误，按默认设计点计算: ", err)
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	calCfg = Config{
		TOp:    file.Section("operating").Key("TOp").MustFloat64(343.15),
		QIn:    file.Section("operating").Key("QIn").MustFloat64(150),
		PhiDeg: file.Section("operating").Key("PhiDeg").MustFloat64(0),

		FluidNumber:      file.Section("fabrication").Key("FluidNumber").MustInt(0),
		FillingRatio:     file.Section("fabrication").Key("FillingRatio").MustFloat64(0.30),
		TargetVacuumPa:   file.Section("fabrication").Key("TargetVacuumPa").MustFloat64(10),
		CorrectionFactor: file.Section("fabrication").Key("CorrectionFactor").MustFloat64(1.2),

		VcLength:   file.Section("geometry").Key("VcLength").MustFloat64(0.070),
		VcWidth:    file.Section("geometry").Key("VcWidth").MustFloat64(0.070),
		TEvapWall:  file.Section("geometry").Key("TEvapWall").MustFloat64(0.00225),
		TCondWall:  file.Section("geometry").Key("TCondWall").MustFloat64(0.00225),
		TVapor:     file.Section("geometry").Key("TVapor").MustFloat64(0.00192),
		EvapLength: file.Section("geometry").Key("EvapLength").MustFloat64(0.020),
		EvapWidth:  file.Section("geometry").Key("EvapWidth").MustFloat64(0.020),
		KShell:     file.Section("geometry").Key("KShell").MustFloat64(380),

		MeshNumberEvap: file.Section("wick_evap").Key("MeshNumber").MustFloat64(200),
		DWEvap:         file.Section("wick_evap").Key("WireDiameter").MustFloat64(0.000051),
		NumLayersEvap:  file.Section("wick_evap").Key("NumLayers").MustInt(5),

		MeshNumberCond: file.Section("wick_cond").Key("MeshNumber").MustFloat64(80),
		DWCond:         file.Section("wick_cond").Key("WireDiameter").MustFloat64(0.00015),
		NumLayersCond:  file.Section("wick_cond").Key("NumLayers").MustInt(5),

		ChartPath:    file.Section("output").Key("ChartPath").MustString(""),
		ServerEnable: file.Section("output").Key("ServerEnable").MustBool(false),
		ServerAddr:   file.Section("output").Key("ServerAddr").MustString(":9000"),
	}
}

func Cfg() Config {
	return calCfg
}
