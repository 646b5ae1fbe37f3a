// Package monte runs many seeded combat simulations in parallel to build a
// damage distribution. each run reseeds the sim so crit rolls and status
// subtick rolls vary between iterations
package monte

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/srliao/nightsim/pkg/combat"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Simulator struct {
	Log     *zap.SugaredLogger
	p       combat.Profile
	seconds int
}

func New(p combat.Profile, seconds int) (*Simulator, error) {
	s := &Simulator{}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	switch p.LogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !p.LogShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if p.LogFile != "" {
		config.OutputPaths = []string{p.LogFile}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	s.Log = logger.Sugar()

	s.p = p
	s.seconds = seconds

	return s, nil
}

type SimResult struct {
	Hist     []float64
	BinStart int64
	Min      float64
	Max      float64
	Mean     float64
	SD       float64
}

// SimDmgDist runs n iterations on w workers and bins total damage into
// buckets of width b
func (s *Simulator) SimDmgDist(n, b, w int64) SimResult {
	r := SimResult{}

	s.Log.Debugw("starting dmg sim", "n", n, "b", b, "w", w)

	var progress, sum, ss float64
	var data []float64
	r.Min = math.MaxFloat64
	r.Max = -1

	count := n

	resp := make(chan float64, n)
	req := make(chan bool)
	done := make(chan bool)
	for i := 0; i < int(w); i++ {
		go s.worker(resp, req, done)
	}

	//use a go routine to send out a job whenever a worker is done
	go func() {
		var wip int64
		for wip < n {
			req <- true
			wip++
		}
	}()

	fmt.Print("\tProgress: 0")

	for count > 0 {
		val := <-resp
		count--

		data = append(data, val)
		sum += val
		if val < r.Min {
			r.Min = val
		}
		if val > r.Max {
			r.Max = val
		}

		if (1 - float64(count)/float64(n)) > (progress + 0.01) {
			progress = (1 - float64(count)/float64(n))
			fmt.Printf(".%.0f", 100*progress)
		}
	}
	fmt.Print("...100%\n")

	close(done)

	r.Mean = sum / float64(n)
	r.BinStart = int64(r.Min/float64(b)) * b
	binMax := (int64(r.Max/float64(b)) + 1.0) * b
	numBin := ((binMax - r.BinStart) / b) + 1

	r.Hist = make([]float64, numBin)

	for _, v := range data {
		ss += (v - r.Mean) * (v - r.Mean)
		steps := int64((v - float64(r.BinStart)) / float64(b))
		r.Hist[steps]++
	}

	r.SD = math.Sqrt(ss / float64(n))

	return r
}

func (s *Simulator) worker(resp chan float64, req chan bool, done chan bool) {
	seeder := rand.New(rand.NewSource(time.Now().UnixNano()))

	prof := s.p
	prof.LogFile = ""
	prof.LogLevel = "error"

	for {
		select {
		case <-req:
			prof.Seed = seeder.Int63()

			sim, err := combat.New(prof)
			if err != nil {
				log.Panic(err)
			}
			sim.BeginCombatPhase()
			dmg, _ := sim.Run(s.seconds)

			resp <- dmg
		case <-done:
			return
		}
	}
}
