// Package server hosts a built diorama: REST routes for the scene
// document, stats and validation, and a websocket that streams simulation
// frames while accepting flight input and the day/night switch.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/daviddswayne-svg/voxel-seattle-center/internal/diorama"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/sim"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/stats"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

const simHz = 30

// Server runs one diorama for any number of viewers. The first connected
// client holds the helicopter stick until it leaves.
type Server struct {
	sp     *spec.DioramaSpec
	port   int
	world  *diorama.Diorama
	stick  *input.Stick
	sounds *audio.Board

	mu      sync.Mutex
	clients map[string]*client
	pilotID string

	// commands queue scene mutations from handlers; the sim loop drains
	// them between steps so they never race the agents.
	commands chan func()
}

// New builds the diorama for the given spec and wraps it in a server.
func New(sp *spec.DioramaSpec, port int) *Server {
	stick := input.NewStick()
	sounds := audio.NewBoard()

	return &Server{
		sp:       sp,
		port:     port,
		world:    diorama.Build(sp, diorama.Options{Source: stick, Sounds: sounds}),
		stick:    stick,
		sounds:   sounds,
		clients:  map[string]*client{},
		commands: make(chan func(), 64),
	}
}

// Start launches the simulation loop and the HTTP server. It blocks until
// the listener fails.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.runLoop(ctx)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Diorama server starting on http://localhost%s", addr)
	log.Printf("Scene: %s (seed %d, %d nodes)", s.sp.Name, s.sp.Seed, stats.Collect(s.world.Root).Nodes)

	return http.ListenAndServe(addr, s.handler())
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /ws", s.handleSocket)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

func (s *Server) runLoop(ctx context.Context) {
	runner := &sim.Runner{
		Scheduler: s.world.Sched,
		Hz:        simHz,
		Before:    s.applyCommands,
		After:     s.broadcastFrame,
	}
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("simulation loop stopped: %v", err)
	}
}

func (s *Server) applyCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Voxel Seattle Center</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Voxel Seattle Center</h1>
<p>Renderer not yet embedded. Run <code>npm run dev</code> in renderer/ for development.</p>
<p>Scene document at <code>/api/scene</code>, live frames at <code>/ws</code>.</p>
</div>
</body></html>`)
}

// handleScene exports the full static scene. Frames streamed over the
// socket refer to the node IDs assigned here.
func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.world.Export())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats.Collect(s.world.Root))
}

// handleValidation runs all three passes against the live scene: spec
// schema, scene tree geometry, and instance budgets.
func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	report := validation.ValidateSchema(s.sp)
	report.Merge(scene.ValidateTree(s.world.Root))
	stats.ValidateBudget(stats.Collect(s.world.Root), report)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.sp)
}
