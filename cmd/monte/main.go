package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gopkg.in/yaml.v2"

	"github.com/srliao/nightsim/pkg/combat"
	"github.com/srliao/nightsim/pkg/monte"

	//trajectories
	_ "github.com/srliao/nightsim/internal/trajectory/boomerang"
	_ "github.com/srliao/nightsim/internal/trajectory/chain"
	_ "github.com/srliao/nightsim/internal/trajectory/forking"
	_ "github.com/srliao/nightsim/internal/trajectory/groundarea"
	_ "github.com/srliao/nightsim/internal/trajectory/homing"
	_ "github.com/srliao/nightsim/internal/trajectory/orbiting"
	_ "github.com/srliao/nightsim/internal/trajectory/piercing"
	_ "github.com/srliao/nightsim/internal/trajectory/sinewave"
	_ "github.com/srliao/nightsim/internal/trajectory/spiral"
	_ "github.com/srliao/nightsim/internal/trajectory/straight"

	//weapons
	_ "github.com/srliao/nightsim/internal/weapon/ashenblade"
	_ "github.com/srliao/nightsim/internal/weapon/stormpike"
	_ "github.com/srliao/nightsim/internal/weapon/witherstaff"
)

func main() {
	var source []byte
	var cfg combat.Profile
	var err error

	t := flag.Int64("t", 10000, "how many iterations")
	prf := flag.String("p", "config.yaml", "which profile to use")
	seconds := flag.Int("s", 60, "seconds each run lasts")
	worker := flag.Int64("w", 24, "number of workers")
	bin := flag.Int64("b", 100, "bin size")
	out := flag.String("o", "out.html", "output file")
	flag.Parse()

	source, err = os.ReadFile(*prf)
	if err != nil {
		log.Fatal(err)
	}
	err = yaml.Unmarshal(source, &cfg)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = 0 //each iteration picks its own seed

	start := time.Now()
	sim, err := monte.New(cfg, *seconds)
	if err != nil {
		log.Fatal(err)
	}
	r := sim.SimDmgDist(*t, *bin, *worker)
	elapsed := time.Since(start)
	fmt.Printf("Profile %v done in %s\n", *prf, elapsed)

	page := components.NewPage()
	page.PageTitle = "simulation results"

	var bins []int64
	var items []opts.LineData
	var cumul, med float64
	med = -1

	for i, v := range r.Hist {
		bins = append(bins, r.BinStart+*bin*int64(i))
		items = append(items, opts.LineData{Value: v})
		cumul += v / float64(*t)
		if cumul >= 0.5 && med == -1 {
			med = float64(i)
		}
	}

	med = float64(r.BinStart) + med*float64(*bin)
	label := fmt.Sprintf("min: %.0f, max %.0f, mean: %.2f, med: %.2f, sd: %.2f", r.Min, r.Max, r.Mean, med, r.SD)

	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%v (n = %v)", *prf, *t),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Freq",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Total damage",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%", Right: "0%", Orient: "vertical", Data: []string{label}}),
	)
	lineChart.AddSeries(label, items)
	lineChart.SetXAxis(bins)

	page.AddCharts(
		lineChart,
	)

	graph, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	page.Render(io.MultiWriter(graph))
}
