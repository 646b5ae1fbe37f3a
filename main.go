package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/srliao/nightsim/pkg/combat"

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

	"gopkg.in/yaml.v2"
)

func main() {
	var source []byte
	var cfg combat.Profile
	var err error

	debugPtr := flag.String("d", "debug", "output level: debug, info, warn")
	secondsPtr := flag.Int("s", 60, "how many seconds to run the sim for")
	pPtr := flag.String("p", "config.yaml", "which profile to use")
	f := flag.String("o", "out.log", "detailed log file")
	showCaller := flag.Bool("c", false, "show caller in debug log")
	w := flag.Bool("w", false, "sweep attribute weights and report damage delta per attribute")
	flag.Parse()

	source, err = os.ReadFile(*pPtr)
	if err != nil {
		log.Fatal(err)
	}
	err = yaml.Unmarshal(source, &cfg)
	if err != nil {
		log.Fatal(err)
	}

	cfg.LogLevel = *debugPtr
	cfg.LogFile = *f
	cfg.LogShowCaller = *showCaller
	os.Remove(*f)

	if *w {
		sweep(cfg, *secondsPtr)
		return
	}

	s, err := combat.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	s.BeginCombatPhase()
	dmg, stats := s.Run(*secondsPtr)
	elapsed := time.Since(start)

	dur := float64(stats.SimDuration) / combat.FramesPerSecond
	for spell, total := range stats.DamageBySpell {
		fmt.Printf("\t%v: %.2f over %v casts (%.2f%%)\n", spell, total, stats.CastsBySpell[spell], 100*total/dmg)
	}
	fmt.Printf(
		"Running profile %v, total damage dealt: %.2f over %.1f seconds. DPS = %.2f. Crits: %v. Defeated: %v. Sim took %s\n",
		*pPtr, dmg, dur, dmg/dur, stats.Crits, stats.Defeated, elapsed,
	)
}

// sweep reruns the profile with each attribute bumped by a few points to
// show which attribute the build gains the most from
func sweep(cfg combat.Profile, seconds int) {
	cfg.LogFile = ""
	cfg.LogLevel = "error"

	base, err := combat.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	base.BeginCombatPhase()
	d1, _ := base.Run(seconds)

	const bump = 4.0
	start := time.Now()
	for _, a := range combat.AttrTypes() {
		c := cfg
		c.Player.Stats = c.Player.Stats.WithAttributeBump(a, bump)

		s, err := combat.New(c)
		if err != nil {
			log.Fatal(err)
		}
		s.BeginCombatPhase()
		d, _ := s.Run(seconds)

		fmt.Printf("Increasing %v by %v; new damage: %.2f old damage: %.2f; gained %.4f%%\n",
			a, bump, d, d1, (d/d1-1)*100)
	}
	fmt.Printf("Finished sweep in %v\n", time.Since(start))
}
