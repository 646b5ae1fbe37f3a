// Binary hud serves combat notifications over a websocket so a browser HUD
// can render health bars, exhaustion flashes and defeat banners live. each
// connection gets a fresh run of the profile, ticked in real time.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v2"

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
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// event is one HUD notification on the wire
type event struct {
	Type     string  `json:"type"`
	Frame    int     `json:"frame"`
	Entity   string  `json:"entity"`
	Current  float64 `json:"current,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Overkill float64 `json:"overkill,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
}

// wsListener forwards combat notifications to the websocket connection.
// writes happen on the tick goroutine, never concurrently
type wsListener struct {
	conn *websocket.Conn
	s    *combat.Sim
	err  error
}

func (w *wsListener) send(ev event) {
	if w.err != nil {
		return
	}
	ev.Frame = w.s.F
	w.err = w.conn.WriteJSON(ev)
}

func (w *wsListener) HealthChanged(e *combat.CombatEntity, current, max float64) {
	w.send(event{Type: "health", Entity: e.Name, Current: current, Max: max})
}

func (w *wsListener) Defeated(e *combat.CombatEntity, overkill float64) {
	w.send(event{Type: "defeated", Entity: e.Name, Overkill: overkill})
}

func (w *wsListener) EnergyChanged(e *combat.CombatEntity, current, max float64) {
	w.send(event{Type: "energy", Entity: e.Name, Current: current, Max: max})
}

func (w *wsListener) Exhausted(e *combat.CombatEntity, overkill float64) {
	w.send(event{Type: "exhausted", Entity: e.Name, Overkill: overkill})
}

func (w *wsListener) EnergyRestored(e *combat.CombatEntity, amount float64) {
	w.send(event{Type: "energy_restored", Entity: e.Name, Amount: amount})
}

func main() {
	addr := flag.String("addr", ":8787", "listen address")
	prf := flag.String("p", "config.yaml", "which profile to use")
	seconds := flag.Int("s", 60, "how many seconds each run lasts")
	flag.Parse()

	source, err := os.ReadFile(*prf)
	if err != nil {
		log.Fatal(err)
	}
	var cfg combat.Profile
	if err := yaml.Unmarshal(source, &cfg); err != nil {
		log.Fatal(err)
	}
	cfg.LogLevel = "warn"
	cfg.LogFile = ""

	http.HandleFunc("/ws", func(rw http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		defer conn.Close()
		serve(conn, cfg, *seconds)
	})

	log.Printf("hud listening on %v", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func serve(conn *websocket.Conn, cfg combat.Profile, seconds int) {
	s, err := combat.New(cfg)
	if err != nil {
		log.Println("sim:", err)
		return
	}
	l := &wsListener{conn: conn, s: s}
	s.AddListener(l)
	s.BeginCombatPhase()

	//real-time pacing so the HUD animates at sim speed
	ticker := time.NewTicker(time.Second / combat.FramesPerSecond)
	defer ticker.Stop()

	frames := seconds * combat.FramesPerSecond
	for i := 0; i < frames && l.err == nil; i++ {
		<-ticker.C
		s.Tick()
	}

	stats := s.Stats()
	l.send(event{Type: "run_complete", Entity: "sim", Amount: stats.TotalDamage})
}
