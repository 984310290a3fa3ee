// Package apitest runs an in-memory notes backend over httptest for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// palette matches the colors the real backend hands out to new labels.
var palette = []string{"#3498db", "#e74c3c", "#f39c12", "#9b59b6", "#1abc9c", "#34495e", "#e67e22", "#16a085"}

type Note struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Status    string   `json:"status"`
	Labels    []string `json:"labels"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type Label struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type failure struct {
	status  int
	message string
}

// Server is a fake of the notes REST API mounted under /api.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	notes  []Note
	labels []Label
	calls  map[string]int
	fail   map[string]failure
}

func NewServer() *Server {
	s := &Server{calls: map[string]int{}, fail: map[string]failure{}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.health)
	mux.HandleFunc("GET /api/notes", s.listNotes)
	mux.HandleFunc("GET /api/notes/{id}", s.getNote)
	mux.HandleFunc("POST /api/notes", s.createNote)
	mux.HandleFunc("PUT /api/notes/{id}", s.updateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", s.deleteNote)
	mux.HandleFunc("GET /api/labels", s.listLabels)
	mux.HandleFunc("POST /api/labels", s.createLabel)
	mux.HandleFunc("DELETE /api/labels/{id}", s.deleteLabel)
	s.Server = httptest.NewServer(s.record(mux))
	return s
}

// APIURL is the base URL a client should be pointed at.
func (s *Server) APIURL() string { return s.URL + "/api" }

// Fail makes every request to route ("POST /api/notes") answer status with
// {"error": message}. An empty message sends no body.
func (s *Server) Fail(route string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[route] = failure{status: status, message: message}
}

func (s *Server) Heal(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fail, route)
}

// Calls counts requests by route, e.g. "GET /api/notes".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// TotalCalls counts every request received.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *Server) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note(nil), s.notes...)
}

func (s *Server) Labels() []Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Label(nil), s.labels...)
}

// SeedNote stores a note directly and returns its id.
func (s *Server) SeedNote(title, status string, labels ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if labels == nil {
		labels = []string{}
	}
	now := stamp()
	n := Note{ID: s.nextNoteID(), Title: title, Status: status, Labels: labels, CreatedAt: now, UpdatedAt: now}
	s.notes = append(s.notes, n)
	return n.ID
}

func (s *Server) SeedLabel(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLabel(name).ID
}

func stamp() string { return time.Now().Format("2006-01-02T15:04:05.000000") }

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + routeOf(r.URL.Path)
		s.mu.Lock()
		s.calls[route]++
		f, failing := s.fail[route]
		s.mu.Unlock()
		if failing {
			if f.message == "" {
				w.WriteHeader(f.status)
				return
			}
			writeJSON(w, f.status, map[string]string{"error": f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// routeOf collapses ids: /api/notes/3 -> /api/notes/{id}.
func routeOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 {
		parts[2] = "{id}"
	}
	return "/" + strings.Join(parts, "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	status, label := r.URL.Query().Get("status"), r.URL.Query().Get("label")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Note{}
	for _, n := range s.notes {
		if status != "" && n.Status != status {
			continue
		}
		if label != "" && !contains(n.Labels, label) {
			continue
		}
		out = append(out, n)
	}
	writeJSON(w, http.StatusOK, out)
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (s *Server) findNote(id int) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNote(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.notes[i])
}

type noteBody struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Labels  *[]string `json:"labels"`
	Status  *string   `json:"status"`
}

func (s *Server) nextNoteID() int {
	id := 0
	for _, n := range s.notes {
		if n.ID > id {
			id = n.ID
		}
	}
	return id + 1
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var body noteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Title is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := stamp()
	n := Note{ID: s.nextNoteID(), Title: *body.Title, Status: "active", Labels: []string{}, CreatedAt: now, UpdatedAt: now}
	if body.Content != nil {
		n.Content = *body.Content
	}
	if body.Labels != nil {
		n.Labels = *body.Labels
	}
	s.notes = append(s.notes, n)
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	var body noteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No data provided"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNote(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Note not found"})
		return
	}
	n := &s.notes[i]
	if body.Title != nil {
		n.Title = *body.Title
	}
	if body.Content != nil {
		n.Content = *body.Content
	}
	if body.Labels != nil {
		n.Labels = *body.Labels
	}
	if body.Status != nil {
		n.Status = *body.Status
	}
	n.UpdatedAt = stamp()
	writeJSON(w, http.StatusOK, *n)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findNote(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Note not found"})
		return
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}

func (s *Server) listLabels(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]Label{}, s.labels...))
}

// addLabel returns the existing label for a case-insensitive match.
func (s *Server) addLabel(name string) Label {
	for _, l := range s.labels {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	id := 0
	for _, l := range s.labels {
		if l.ID > id {
			id = l.ID
		}
	}
	id++
	l := Label{ID: id, Name: name, Color: palette[(id-1)%len(palette)]}
	s.labels = append(s.labels, l)
	return l
}

func (s *Server) createLabel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Label name is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusCreated, s.addLabel(strings.TrimSpace(body.Name)))
}

func (s *Server) deleteLabel(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var name string
	kept := s.labels[:0]
	for _, l := range s.labels {
		if l.ID == id {
			name = l.Name
			continue
		}
		kept = append(kept, l)
	}
	s.labels = kept
	if name == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Label not found"})
		return
	}
	for i := range s.notes {
		ls := []string{}
		for _, l := range s.notes[i].Labels {
			if l != name {
				ls = append(ls, l)
			}
		}
		s.notes[i].Labels = ls
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Label deleted"})
}
