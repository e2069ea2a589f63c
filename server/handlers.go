package server

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

type healthResponse struct {
	Status    string `json:"status"`
	LoadID    string `json:"load_id"`
	Stops     int    `json:"stops"`
	Buses     int    `json:"buses"`
	Distances int    `json:"distances"`
}

type busListResponse struct {
	Buses []string `json:"buses"`
}

type stopListResponse struct {
	Stops []string `json:"stops"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// nameParam is the validated form of a {name} path segment.
type nameParam struct {
	Name string `validate:"required,max=256"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		LoadID:    s.loadID.String(),
		Stops:     s.cat.StopCount(),
		Buses:     s.cat.BusCount(),
		Distances: s.cat.DistanceCount(),
	})
}

func (s *Server) handleBusList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, busListResponse{Buses: s.cat.Buses()})
}

func (s *Server) handleStopList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stopListResponse{Stops: s.cat.Stops()})
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, stat.KindBus)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, stat.KindStop)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, kind string) {
	name, err := s.pathName(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid name"})
		return
	}
	res := stat.Answer(s.cat, stat.Request{Kind: kind, Name: name})
	b, err := s.jsonFmt.Format(res)
	if err != nil {
		log.Printf("server: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "response could not be encoded"})
		return
	}
	status := http.StatusOK
	if !res.Found {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (s *Server) pathName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	// chi matches on RawPath when the request carries one
	if r.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			return "", err
		}
	}
	if err := s.validate.Struct(nameParam{Name: name}); err != nil {
		return "", err
	}
	return name, nil
}

// writeJSON encodes v before writing headers so an encoding failure can
// still become a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("server: encode response: %v", err)
		http.Error(w, `{"error":"response could not be encoded"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

