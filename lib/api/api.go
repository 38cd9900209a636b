package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pixelglue/quadview/lib/config"
	"github.com/pixelglue/quadview/lib/metrics"
	"github.com/pixelglue/quadview/lib/stats"
)

// Api is the optional status server. It never touches GL state; the
// only way it reaches into the render loop is the quit callback.
type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.ApiCfg
	quit func()

	Stats *stats.Stats

	wsClients   map[*websocket.Conn]bool
	wsClientsMu sync.Mutex
}

func New(cfg *config.ApiCfg, st *stats.Stats, quit func()) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.quit = quit
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.Stats = st
	a.wsClients = make(map[*websocket.Conn]bool)
	return a
}

func (a *Api) Serve() error {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	log.Printf("shutting down as per api request")
	a.quit()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log.Printf("could not write response: %s\n", err.Error())
		return
	}
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("could not close websocket: %s\n", err.Error())
		}
	}(ws)

	a.addClient(ws)
	go a.websocketWriter(ws)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			a.removeClient(ws)
			break
		}
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	a.wsClients[ws] = true
	a.Stats.WsClients = len(a.wsClients)
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	delete(a.wsClients, ws)
	a.Stats.WsClients = len(a.wsClients)
}

// websocketWriter pushes a stats packet to one client every two
// seconds until the connection dies.
func (a *Api) websocketWriter(ws *websocket.Conn) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer pingTicker.Stop()
	timeout := 10 * time.Second
	for range pingTicker.C {
		packet, err := json.Marshal(a.Stats)
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			log.Printf("could not set write deadline: %s\n", err.Error())
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}

// ServeInBackground starts the status server if the config asks for
// one. Returns nil when the API is disabled.
func ServeInBackground(cfg *config.ApiCfg, st *stats.Stats, quit func()) *Api {
	if cfg == nil || cfg.Bind == "" {
		return nil
	}
	theApi := New(cfg, st, quit)

	log.Printf("starting web server on %s\n", cfg.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil {
			log.Fatalf("could not start web server: %s", err)
		}
	}()
	return theApi
}
