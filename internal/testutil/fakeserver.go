// Package testutil provides testing utilities.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Makepad-fr/tada/internal/model"
)

// Request is one call recorded by FakeServer.
type Request struct {
	Method      string
	Path        string
	Status      string // value of ?status=
	Body        model.Draft
	Auth        string
	RequestID   string
	Accept      string
	ContentType string
}

// FakeServer is an in-memory /todos backend for tests.
type FakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []model.Task
	nextID   int
	requests []Request

	// Error injection: method -> HTTP status returned instead of handling.
	Fail map[string]int
	rawList string
}

// NewFakeServer starts a backend and closes it when the test ends.
func NewFakeServer(t testing.TB) *FakeServer {
	t.Helper()
	fs := &FakeServer{nextID: 1, Fail: make(map[string]int)}

	r := mux.NewRouter()
	r.Use(fs.record, fs.inject)
	r.HandleFunc("/todos", fs.listTodos).Methods(http.MethodGet)
	r.HandleFunc("/todos", fs.createTodo).Methods(http.MethodPost)
	r.HandleFunc("/todos/{id:[0-9]+}", fs.updateTodo).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id:[0-9]+}", fs.deleteTodo).Methods(http.MethodDelete)

	fs.Server = httptest.NewServer(r)
	t.Cleanup(fs.Close)
	return fs
}

// AddTask seeds a task and returns its id.
func (fs *FakeServer) AddTask(title string, completed bool) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	id := fs.nextID
	fs.nextID++
	fs.tasks = append(fs.tasks, model.Task{ID: id, Title: title, Completed: completed})
	return id
}

// Tasks returns a copy of the stored tasks.
func (fs *FakeServer) Tasks() []model.Task {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]model.Task, len(fs.tasks))
	copy(out, fs.tasks)
	return out
}

// Requests returns a copy of every request received so far.
func (fs *FakeServer) Requests() []Request {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]Request, len(fs.requests))
	copy(out, fs.requests)
	return out
}

// ResetRequests forgets recorded requests.
func (fs *FakeServer) ResetRequests() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.requests = nil
}

// SetFail makes every request with method answer status; 0 clears it.
func (fs *FakeServer) SetFail(method string, status int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if status == 0 {
		delete(fs.Fail, method)
		return
	}
	fs.Fail[method] = status
}

// SetRawList makes GET /todos answer body verbatim; "" restores the store.
func (fs *FakeServer) SetRawList(body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.rawList = body
}

func (fs *FakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    r.URL.Query().Get("status"),
			Auth:        r.Header.Get("Authorization"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Accept:      r.Header.Get("Accept"),
			ContentType: r.Header.Get("Content-Type"),
		}
		if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut) {
			var d model.Draft
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				http.Error(w, "Invalid request payload", http.StatusBadRequest)
				return
			}
			req.Body = d
			r = r.WithContext(withDraft(r.Context(), d))
		}
		fs.mu.Lock()
		fs.requests = append(fs.requests, req)
		fs.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (fs *FakeServer) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		status := fs.Fail[r.Method]
		fs.mu.Unlock()
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (fs *FakeServer) listTodos(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	raw := fs.rawList
	status := r.URL.Query().Get("status")
	var out []model.Task
	for _, t := range fs.tasks {
		switch status {
		case "completed":
			if !t.Completed {
				continue
			}
		case "pending":
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	fs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if raw != "" {
		_, _ = w.Write([]byte(raw))
		return
	}
	if out == nil {
		out = []model.Task{}
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (fs *FakeServer) createTodo(w http.ResponseWriter, r *http.Request) {
	d := draftFrom(r.Context())
	fs.mu.Lock()
	task := model.Task{ID: fs.nextID, Title: d.Title, Completed: d.Completed}
	fs.nextID++
	fs.tasks = append(fs.tasks, task)
	fs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(task)
}

func (fs *FakeServer) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	d := draftFrom(r.Context())

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, t := range fs.tasks {
		if t.ID == id {
			fs.tasks[i].Title = d.Title
			fs.tasks[i].Completed = d.Completed
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(fs.tasks[i])
			return
		}
	}
	http.Error(w, "Task not found", http.StatusNotFound)
}

func (fs *FakeServer) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, t := range fs.tasks {
		if t.ID == id {
			fs.tasks = append(fs.tasks[:i], fs.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Task not found", http.StatusNotFound)
}
