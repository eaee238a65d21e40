package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/morezero/interactions/pkg/events"
)

// HealthOutput is the body of GET /health.
type HealthOutput struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp string            `json:"timestamp"`
}

// Healthy reports whether every check passed.
func (h *HealthOutput) Healthy() bool { return h.Status == "healthy" }

// health runs every registered check. A check passes when it returns nil.
func (s *Server) health(ctx context.Context) *HealthOutput {
	out := &HealthOutput{
		Status:    "healthy",
		Checks:    make(map[string]string, len(s.checks)),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			out.Status = "unhealthy"
			out.Checks[name] = err.Error()
			continue
		}
		out.Checks[name] = "ok"
	}
	return out
}

// handler builds the HTTP mux: the webhook endpoint when enabled, health,
// readiness and the home page.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome())
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", handleReady)
	mux.HandleFunc("/routes", s.handleRoutes)
	if s.webhook != nil {
		mux.Handle("/interactions", s.webhook)
	}
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.HealthCheckTimeout)
	defer cancel()

	h := s.health(ctx)
	w.Header().Set("Content-Type", "application/json")
	if !h.Healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(h)
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

func (s *Server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"routes": s.router.Routes()})
}

// homePageTemplate is the HTML for the service home page (white bg, black/blue text).
const homePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Interactions</title>
  <style>
    * { box-sizing: border-box; }
    body { background: #fff; color: #000; font-family: system-ui, sans-serif; margin: 0; padding: 2rem; line-height: 1.5; }
    h1, h2 { color: #0066cc; }
    .status-healthy { color: #0066cc; font-weight: bold; }
    .status-unhealthy { color: #cc0000; font-weight: bold; }
    table { border-collapse: collapse; width: 100%; max-width: 900px; margin-top: 0.5rem; }
    th, td { text-align: left; padding: 0.5rem 0.75rem; border: 1px solid #ccc; }
    th { background: #f0f4f8; color: #0066cc; }
    .stat { font-weight: bold; color: #0066cc; }
    .meta { color: #333; font-size: 0.9rem; margin-top: 1rem; }
    section { margin-bottom: 2rem; }
    .error { color: #cc0000; }
  </style>
</head>
<body>
  <h1>Interactions</h1>
  <p class="meta">Transports: {{range $i, $t := .Transports}}{{if $i}}, {{end}}{{$t}}{{else}}none{{end}}</p>

  <section>
    <h2>Health</h2>
    <p>Status: <span class="status-{{.Health.Status}}">{{.Health.Status}}</span></p>
    {{range $name, $result := .Health.Checks}}
    <p>{{$name}}: {{if eq $result "ok"}}<span class="stat">OK</span>{{else}}<span class="error">{{$result}}</span>{{end}}</p>
    {{end}}
    <p>Timestamp: {{.Health.Timestamp}}</p>
  </section>

  <section>
    <h2>Routes</h2>
    <table>
      <thead><tr><th>Route</th><th>Dispatches</th><th>Unhandled</th><th>Avg ms</th></tr></thead>
      <tbody>
        {{range .Routes}}
        <tr><td>{{.Route}}</td><td>{{.Count}}</td><td>{{.Unhandled}}</td><td>{{.AvgMs}}</td></tr>
        {{end}}
      </tbody>
    </table>
    <p>Total dispatches: <span class="stat">{{.Total}}</span></p>
  </section>

  <section>
    <h2>Recent dispatches</h2>
    {{if not .Recent}}
    <p>No interactions yet.</p>
    {{else}}
    <table>
      <thead><tr><th>Time</th><th>Route</th><th>Guild</th><th>User</th><th>Response</th><th>ms</th></tr></thead>
      <tbody>
        {{range .Recent}}
        <tr>
          <td>{{.Timestamp}}</td>
          <td>{{.Route}}{{if not .Handled}} <span class="error">(unhandled)</span>{{end}}</td>
          <td>{{.GuildID}}</td>
          <td>{{.UserID}}</td>
          <td>{{.ResponseType}}{{if .Ephemeral}} (ephemeral){{end}}</td>
          <td>{{.DurationMs}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
  </section>
</body>
</html>
`

// homeData is the data passed to the home page template.
type homeData struct {
	Health     *HealthOutput
	Transports []string
	Total      int
	Routes     []routeCount
	Recent     []events.InteractionDispatchedEvent
}

// handleHome returns an HTTP handler for the home page. Registered routes
// that have not been hit yet are listed with zero counts.
func (s *Server) handleHome() http.HandlerFunc {
	tmpl := template.Must(template.New("home").Parse(homePageTemplate))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.cfg.HealthCheckTimeout)
		defer cancel()

		total, counts, recent := s.stats.snapshot()
		data := homeData{
			Health:     s.health(ctx),
			Transports: s.cfg.EnabledTransports(),
			Total:      total,
			Routes:     mergeRoutes(s.router.Routes(), counts),
			Recent:     recent,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			slog.Error(fmt.Sprintf("%s - home template execute: %v", logPrefix, err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// mergeRoutes adds a zero row for each registered route without
// dispatches. Routes that were only seen (unknown custom_ids) stay in.
func mergeRoutes(registered []string, counts []routeCount) []routeCount {
	seen := make(map[string]bool, len(counts))
	for _, c := range counts {
		seen[c.Route] = true
	}
	var idle []routeCount
	for _, route := range registered {
		if !seen[route] {
			idle = append(idle, routeCount{Route: route})
		}
	}
	sort.Slice(idle, func(i, j int) bool { return idle[i].Route < idle[j].Route })
	return append(counts, idle...)
}
