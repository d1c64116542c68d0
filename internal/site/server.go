package site

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"docsite/internal/catalog"
	"docsite/internal/index"
)

// ServeOptions configures the local documentation server.
type ServeOptions struct {
	// Dir is the generated site directory.
	Dir string
	// Port to listen on.
	Port int
	// Open launches the default browser after startup.
	Open bool
	// Catalog backs the JSON API. Required.
	Catalog *catalog.Catalog
	// Index, when non-nil, answers search queries from SQLite instead of
	// filtering the catalog in memory.
	Index *index.Store
}

// Serve starts the local HTTP server for the generated site.
func Serve(opts ServeOptions) error {
	addr := fmt.Sprintf(":%d", opts.Port)
	url := fmt.Sprintf("http://localhost:%d", opts.Port)

	if opts.Open {
		go openBrowser(url)
	}

	fmt.Printf("Serving documentation at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("docsite server listening on %s", addr)
	return srv.ListenAndServe()
}

// NewRouter builds the chi router serving the static site and the JSON API.
func NewRouter(opts ServeOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/catalog", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, catalogResponse(opts.Catalog))
	})

	r.Get("/api/search", func(w http.ResponseWriter, req *http.Request) {
		handleSearch(w, req, opts)
	})

	// Static files (registered after the API routes).
	r.Handle("/*", http.FileServer(http.Dir(opts.Dir)))

	return r
}

// catalogFile is one file in the /api/catalog response. Explanations and
// code stay out of the listing; pages carry those.
type catalogFile struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Page     string `json:"page"`
}

type catalogGroup struct {
	Folder string        `json:"folder"`
	Files  []catalogFile `json:"files"`
}

func catalogResponse(c *catalog.Catalog) []catalogGroup {
	groups := []catalogGroup{}
	for _, g := range c.OrderedGroups() {
		cg := catalogGroup{Folder: g.Folder}
		for _, f := range g.Files {
			cg.Files = append(cg.Files, catalogFile{
				Path:     f.Path,
				Name:     f.Name,
				Language: catalog.DetectLanguage(f.Path),
				Page:     PagePath(f.Path),
			})
		}
		groups = append(groups, cg)
	}
	return groups
}

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query   string        `json:"query"`
	Results []index.Entry `json:"results"`
}

func handleSearch(w http.ResponseWriter, req *http.Request, opts ServeOptions) {
	term := strings.TrimSpace(req.URL.Query().Get("q"))

	var (
		results []index.Entry
		err     error
	)
	if opts.Index != nil {
		results, err = opts.Index.Search(term)
		if err != nil {
			http.Error(w, `{"error":"search failed"}`, http.StatusInternalServerError)
			return
		}
	} else {
		for _, g := range opts.Catalog.Filter(term).OrderedGroups() {
			for _, f := range g.Files {
				results = append(results, index.Entry{
					Path:     f.Path,
					Name:     f.Name,
					Folder:   g.Folder,
					Language: catalog.DetectLanguage(f.Path),
					Summary:  extractSummary(f.Explanation),
				})
			}
		}
	}

	if results == nil {
		results = []index.Entry{}
	}
	writeJSON(w, searchResponse{Query: term, Results: results})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
