package predict

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// stateRanges are the base risk ranges per state key.
var stateRanges = map[string][2]float64{
	"maharashtra": {50, 70},
	"delhi":       {60, 80},
	"up":          {55, 75},
	"karnataka":   {45, 65},
	"tn":          {45, 65},
	"wb":          {50, 70},
	"telangana":   {45, 65},
}

var defaultRange = [2]float64{50, 70}

// crimeMultipliers scale the base risk per crime type.
var crimeMultipliers = map[string][2]float64{
	"violent": {1.2, 1.4},
	"theft":   {1.1, 1.3},
	"cyber":   {0.8, 1.0},
}

// Generator synthesises prediction payloads. It stands in for the real service
// during development and does no modelling.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator seeds a generator; equal seeds produce equal sequences.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) uniform(r [2]float64) float64 {
	return r[0] + g.rng.Float64()*(r[1]-r[0])
}

// Generate builds a payload for a validated request.
func (g *Generator) Generate(req Request) Prediction {
	g.mu.Lock()
	defer g.mu.Unlock()

	base, ok := stateRanges[strings.ToLower(req.State)]
	if !ok {
		base = defaultRange
	}
	level := g.uniform(base)
	if m, ok := crimeMultipliers[req.CrimeType]; ok {
		level *= g.uniform(m)
	}
	level = math.Min(100, level)

	theft := g.uniform([2]float64{30, 45})
	violence := g.uniform([2]float64{20, 35})
	cyber := g.uniform([2]float64{15, 25})
	other := 100 - (theft + violence + cyber)

	night := g.uniform([2]float64{25, 35})
	evening := g.uniform([2]float64{25, 35})
	afternoon := g.uniform([2]float64{20, 30})
	morning := 100 - (night + evening + afternoon)

	return Prediction{
		RiskLevel: round2(level),
		CrimeBreakdown: []CrimeShare{
			{Type: "Theft", Percentage: round2(theft)},
			{Type: "Violence", Percentage: round2(violence)},
			{Type: "Cyber", Percentage: round2(cyber)},
			{Type: "Other", Percentage: round2(other)},
		},
		TimePattern: TimePattern{
			Morning:   round2(morning),
			Afternoon: round2(afternoon),
			Evening:   round2(evening),
			Night:     round2(night),
		},
		SocioeconomicFactors: []Factor{
			{Factor: "Population Density", Impact: round2(g.uniform([2]float64{60, 90}))},
			{Factor: "Unemployment Rate", Impact: round2(g.uniform([2]float64{50, 80}))},
			{Factor: "Police Presence", Impact: round2(g.uniform([2]float64{40, 70}))},
		},
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Metrics are the service's Prometheus collectors.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  prometheus.Histogram
}

// NewMetrics registers collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "predict_requests_total",
			Help: "Prediction requests by outcome.",
		}, []string{"outcome"}),
		Latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "predict_request_duration_seconds",
			Help:    "Prediction handler latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Requests, m.Latency)
	return m
}

// NewHandler routes POST /api/predict and GET /metrics.
func NewHandler(gen *Generator, reg *prometheus.Registry, log *zap.Logger) http.Handler {
	metrics := NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))
	r.Use(requestID)
	r.Post("/api/predict", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		defer func() { metrics.Latency.Observe(time.Since(start).Seconds()) }()

		var pr Request
		if err := json.NewDecoder(req.Body).Decode(&pr); err != nil {
			metrics.Requests.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
			return
		}
		if err := pr.Validate(); err != nil {
			metrics.Requests.WithLabelValues("bad_request").Inc()
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		p := gen.Generate(pr)
		metrics.Requests.WithLabelValues("ok").Inc()
		log.Info("prediction served",
			zap.String("request_id", w.Header().Get("X-Request-Id")),
			zap.String("location", pr.Location),
			zap.String("state", pr.State),
			zap.String("crime_type", pr.CrimeType),
			zap.Float64("risk_level", p.RiskLevel),
		)
		writeJSON(w, http.StatusOK, p)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
