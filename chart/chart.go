package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"vc/calculator"
)

// 压力平衡曲线：总压降随热负荷线性增长，与毛细压力上限的交点即 Q_max

func SavePressureBalance(result *calculator.Result, path string) error {
	p := plot.New()
	p.Title.Text = "Pressure Balance"
	p.X.Label.Text = "Q (W)"
	p.Y.Label.Text = "dP (Pa)"

	qEnd := result.Pressure.QMax * 1.2
	if qEnd < result.Env.Operating.QIn {
		qEnd = result.Env.Operating.QIn * 1.2
	}

	const n = 100
	total := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		q := qEnd * float64(i) / n
		total[i].X = q
		total[i].Y = result.Pressure.DPG + (result.Pressure.LiquidTerm+result.Pressure.VaporTerm)*q
	}
	budget := plotter.XYs{
		{X: 0, Y: result.Pressure.DPCap},
		{X: qEnd, Y: result.Pressure.DPCap},
	}

	totalLine, err := plotter.NewLine(total)
	if err != nil {
		return err
	}
	budgetLine, err := plotter.NewLine(budget)
	if err != nil {
		return err
	}
	budgetLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(totalLine, budgetLine)
	p.Legend.Add("dP_total(Q)", totalLine)
	p.Legend.Add("dP_cap", budgetLine)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
