package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/cube/anim"
)

// StyleView is the JSON form of anim.Style.
type StyleView struct {
	MarginLeft float64 `json:"marginLeft"`
	MarginTop  float64 `json:"marginTop"`
	Scale      float64 `json:"scale"`
	RotateX    float64 `json:"rotateX"`
	RotateY    float64 `json:"rotateY"`
	Opacity    float64 `json:"opacity"`
	Background string  `json:"backgroundColor"`
}

// State is the response body of every endpoint.
type State struct {
	Running  bool          `json:"running"`
	Position anim.Position `json:"position"`
	Label    string        `json:"label"`
	Style    StyleView     `json:"style"`
}

// Api exposes the Controller over HTTP.
type Api struct {
	controller *anim.Controller
	mux        *http.ServeMux
}

// NewApi creates an Api for controller.
func NewApi(controller *anim.Controller) *Api {
	a := new(Api)
	a.controller = controller
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/state", a.handleState)
	a.mux.HandleFunc("/start", a.handleStart)
	a.mux.HandleFunc("/stop", a.handleStop)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.mux)
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	a.writeState(w, http.StatusOK)
}

func (a *Api) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	status := http.StatusOK
	if !a.controller.Start() {
		status = http.StatusConflict
	}
	a.writeState(w, status)
}

func (a *Api) handleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	a.controller.Stop()
	a.writeState(w, http.StatusOK)
}

func (a *Api) state() State {
	style := a.controller.Style()
	position := a.controller.Position()
	return State{
		Running:  a.controller.Running(),
		Position: position,
		Label:    position.String(),
		Style: StyleView{
			MarginLeft: style.MarginLeft,
			MarginTop:  style.MarginTop,
			Scale:      style.Scale,
			RotateX:    style.RotateX,
			RotateY:    style.RotateY,
			Opacity:    style.Opacity,
			Background: style.Background.Clamped().Hex(),
		},
	}
}

func (a *Api) writeState(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(a.state()); err != nil {
		log.Printf("Write state: %v", err)
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
