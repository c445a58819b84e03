// Command devbackend runs a seeded REST backend for local development.
// It serves the same {success, data, pagination} envelope the production
// learning-platform API uses, so the admin console can run against it
// without any external services.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination *pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// store holds seeded records per resource, keyed by id.
type store struct {
	mu   sync.RWMutex
	data map[string][]map[string]interface{}
}

func newStore() *store {
	s := &store{data: make(map[string][]map[string]interface{})}
	s.seed()
	return s
}

func (s *store) list(resource string, page, pageSize int) ([]map[string]interface{}, *pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.data[resource]
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	out := make([]map[string]interface{}, end-start)
	copy(out, records[start:end])
	return out, &pagination{Page: page, PageSize: pageSize, TotalPages: totalPages, TotalItems: total}
}

func (s *store) create(resource string, record map[string]interface{}) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	record["id"] = uuid.NewString()
	s.data[resource] = append(s.data[resource], record)
	return record
}

func (s *store) update(resource, id string, record map[string]interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[resource] {
		if existing["id"] == id {
			record["id"] = id
			s.data[resource][i] = record
			return true
		}
	}
	return false
}

func (s *store) delete(resource, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.data[resource]
	for i, existing := range records {
		if existing["id"] == id {
			s.data[resource] = append(records[:i], records[i+1:]...)
			return true
		}
	}
	return false
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	db := newStore()
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/{resource}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			resource := chi.URLParam(req, "resource")
			page, _ := strconv.Atoi(req.URL.Query().Get("page"))
			pageSize, _ := strconv.Atoi(req.URL.Query().Get("page_size"))
			if pageSize < 1 {
				pageSize = 20
			}
			records, pg := db.list(resource, page, pageSize)
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: records, Pagination: pg})
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			resource := chi.URLParam(req, "resource")
			record, err := decodeRecord(req)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
				return
			}
			created := db.create(resource, record)
			writeJSON(w, http.StatusCreated, envelope{Success: true, Data: created})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			resource := chi.URLParam(req, "resource")
			record, err := decodeRecord(req)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
				return
			}
			if !db.update(resource, chi.URLParam(req, "id"), record) {
				writeJSON(w, http.StatusNotFound, envelope{Error: "record not found"})
				return
			}
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: record})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			resource := chi.URLParam(req, "resource")
			if !db.delete(resource, chi.URLParam(req, "id")) {
				writeJSON(w, http.StatusNotFound, envelope{Error: "record not found"})
				return
			}
			writeJSON(w, http.StatusOK, envelope{Success: true})
		})
	})

	log.Printf("Dev backend listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func decodeRecord(req *http.Request) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := json.NewDecoder(req.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return record, nil
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}
