package calculator

import (
	"fmt"
	"strings"
)

// 结果报告，沿用参考模型的栏目与小数位数

func (c *vcCalculator) Report() string {
	r := c.result
	if r == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, "====================================================")
	fmt.Fprintln(&b, "   VAPOR CHAMBER 1D ANALYTICAL MODEL - RESULTS")
	fmt.Fprintln(&b, "====================================================")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "--- DERIVED WICK GEOMETRY ---")
	fmt.Fprintf(&b, "Total Evaporator Wick Thickness: %.2f mm\n", r.EvapWick.Thickness*1000)
	fmt.Fprintf(&b, "Total Condenser Wick Thickness:  %.2f mm\n\n", r.CondWick.Thickness*1000)

	fmt.Fprintln(&b, "--- FABRICATION TARGETS ---")
	fmt.Fprintf(&b, "Target Filling Ratio: %.0f %%\n", r.Env.FillingRatio*100)
	fmt.Fprintf(&b, "Required Liquid Charge Volume: %.4f mL\n", r.Flow.ChargeVolumeML)
	fmt.Fprintf(&b, "Target Initial Vacuum: %.2f Pa\n\n", r.Env.TargetVacuumPa)

	fmt.Fprintln(&b, "--- ANALYSIS CONDITIONS ---")
	fmt.Fprintf(&b, "Operating Temperature: %.1f C\n", r.Env.Operating.TOp-273.15)
	fmt.Fprintf(&b, "Input Heat Load (Q_in): %.1f W\n", r.Env.Operating.QIn)
	fmt.Fprintf(&b, "Orientation Angle: %.1f degrees\n\n", r.Env.Operating.PhiDeg)

	fmt.Fprintln(&b, "--- PRESSURE BALANCE ANALYSIS ---")
	fmt.Fprintf(&b, "Max Capillary Pressure (dP_cap):   %.2f Pa\n", r.Pressure.DPCap)
	fmt.Fprintf(&b, "Total Pressure Drop (dP_total):    %.2f Pa\n", r.Pressure.DPTotal)
	fmt.Fprintf(&b, "  - Liquid Drop (dP_l):            %.2f Pa\n", r.Pressure.DPL)
	fmt.Fprintf(&b, "  - Vapor Drop (dP_v):             %.2f Pa\n", r.Pressure.DPV)
	fmt.Fprintf(&b, "  - Gravity Drop (dP_g):           %.2f Pa\n\n", r.Pressure.DPG)

	fmt.Fprintln(&b, "--- PREDICTED PERFORMANCE METRICS ---")
	if r.Pressure.LimitMet {
		fmt.Fprintf(&b, "YES! CAPILLARY LIMIT: MET for the specified heat load (%.1f W).\n", r.Env.Operating.QIn)
	} else {
		fmt.Fprintln(&b, "NO! CAPILLARY LIMIT: FAILED. Wick cannot sustain the required flow.")
		fmt.Fprintf(&b, "   The design is limited to Q_max = %.1f W under these conditions.\n", r.Pressure.QMax)
	}
	fmt.Fprintf(&b, "Maximum Heat Transport (Q_max): %.1f W\n", r.Pressure.QMax)
	fmt.Fprintf(&b, "Ideal Thermal Resistance (R_ideal): %.4f K/W\n", r.Resistance.RTotalIdeal)
	fmt.Fprintf(&b, "Corrected Thermal Resistance (R_corrected): %.4f K/W\n", r.Resistance.RTotalCorrected)
	fmt.Fprintf(&b, "Predicted Corrected Temp. Drop (dT): %.2f C\n", r.Resistance.DeltaT)
	return b.String()
}
