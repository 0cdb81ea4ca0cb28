package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ProductAPI/pkg/kit"
)

const greeting = "Hello World"

type Server struct {
	Store  Store
	Log    *zap.Logger
	APIKey string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Set before Route so the products subrouter inherits them.
	r.NotFound(s.routeNotFound)
	r.MethodNotAllowed(s.routeNotFound)

	r.Get("/", s.hello)

	r.Route("/api/products", func(pr chi.Router) {
		pr.Get("/", s.list)
		// Literal segments go before {id} so they are never read as ids.
		pr.Get("/search", s.search)
		pr.Get("/stats", s.stats)
		pr.Get("/{id}", s.get)

		pr.Group(func(ar chi.Router) {
			ar.Use(RequireAPIKey(s.APIKey, s.Log))
			ar.Post("/", s.create)
			ar.Put("/{id}", s.update)
			ar.Delete("/{id}", s.delete)
		})
	})

	return r
}

func (s *Server) hello(w http.ResponseWriter, _ *http.Request) {
	kit.WriteText(w, http.StatusOK, greeting)
}

func (s *Server) routeNotFound(w http.ResponseWriter, r *http.Request) {
	kit.WriteError(w, r, http.StatusNotFound, kindNotFound, "Route not found")
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := s.Store.List(r.Context(), ListQuery{
		Category: q.Get("category"),
		Page:     parseIntParam(q.Get("page")),
		Limit:    parseIntParam(q.Get("limit")),
	})
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFields(w, r)
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}

	p, err := s.Store.Create(r.Context(), f)
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}

	if s.Log != nil {
		s.Log.Debug("product created", zap.String("id", p.ID), zap.String("category", p.Category))
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFields(w, r)
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}

	p, err := s.Store.Update(r.Context(), chi.URLParam(r, "id"), f)
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Store.Delete(r.Context(), id); err != nil {
		writeError(w, r, s.Log, err)
		return
	}

	if s.Log != nil {
		s.Log.Debug("product deleted", zap.String("id", id))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	found, err := s.Store.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, found)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st, err := s.Store.Stats(r.Context())
	if err != nil {
		writeError(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, st)
}
