package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tembolo1284/mcpricing/engine"
	"github.com/tembolo1284/mcpricing/internal/obslog"
	"github.com/tembolo1284/mcpricing/internal/pricing"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP server exposing a pricing endpoint and Prometheus metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(servePort)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")
}

var (
	pricingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mcpricing",
		Name:      "price_call_duration_seconds",
		Help:      "Latency of a single pricing call, by model and thread count.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"model", "threads"})

	pathsSimulated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcpricing",
		Name:      "paths_simulated_total",
		Help:      "Total number of Monte Carlo paths simulated, by model and thread count.",
	}, []string{"model", "threads"})

	pricingErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcpricing",
		Name:      "price_call_errors_total",
		Help:      "Total number of pricing calls that returned a non-Success error code, by model.",
	}, []string{"model"})
)

// priceRequest is the JSON body POST /price/{model} accepts: the union of
// every model's parameters, with fields a given model doesn't need ignored.
type priceRequest struct {
	OptionType string `json:"option_type"`
	Paths      int    `json:"paths"`
	Steps      int    `json:"steps"`
	Threads    int    `json:"threads"`
	Antithetic bool   `json:"antithetic"`
	Seed       uint64 `json:"seed"`

	S0, F0, K, R, Sigma, T float64 `json:",omitempty"`

	Floating  bool      `json:"floating"`
	Geometric bool      `json:"geometric"`
	Barrier   float64   `json:"barrier"`
	Rebate    float64   `json:"rebate"`
	Style     string    `json:"style"`
	Cash      bool      `json:"cash"`
	Payout    float64   `json:"payout"`
	Schedule  []float64 `json:"schedule"`

	V0, Kappa, Theta, Xi, Rho float64 `json:",omitempty"`
	Alpha, Beta, Nu           float64 `json:",omitempty"`
	Lambda, MuJ, SigmaJ       float64 `json:",omitempty"`
}

type priceResponse struct {
	Price float64 `json:"price"`
	Error string  `json:"error,omitempty"`
}

func runServe(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/price/", handlePrice)

	addr := fmt.Sprintf(":%d", port)
	obslog.For(uuid.Nil).Info().Str("addr", addr).Msg("mcpricing serve listening")
	return http.ListenAndServe(addr, mux)
}

func handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	model := r.URL.Path[len("/price/"):]

	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePriceError(w, http.StatusBadRequest, err)
		return
	}
	if req.Paths <= 0 {
		req.Paths = 100000
	}
	if req.Steps <= 0 {
		req.Steps = 1
	}
	if req.Threads <= 0 {
		req.Threads = 1
	}

	ot := pricing.Call
	if req.OptionType == "put" {
		ot = pricing.Put
	}

	c := engine.NewContext(req.Seed).
		WithPaths(req.Paths).
		WithSteps(req.Steps).
		WithThreads(req.Threads).
		WithAntithetic(req.Antithetic)

	threadLabel := strconv.Itoa(req.Threads)
	timer := prometheus.NewTimer(pricingLatency.WithLabelValues(model, threadLabel))
	price, err := dispatchPrice(c, model, req, ot)
	timer.ObserveDuration()

	if err != nil {
		pricingErrors.WithLabelValues(model).Inc()
		writePriceError(w, http.StatusBadRequest, err)
		return
	}
	if c.LastError() != engine.Success {
		pricingErrors.WithLabelValues(model).Inc()
		writePriceError(w, http.StatusUnprocessableEntity, fmt.Errorf("%s", c.LastError()))
		return
	}
	pathsSimulated.WithLabelValues(model, threadLabel).Add(float64(req.Paths))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(priceResponse{Price: price})
}

func dispatchPrice(c *engine.Context, model string, req priceRequest, ot pricing.OptionType) (float64, error) {
	switch model {
	case "european":
		return c.PriceEuropeanGBM(req.S0, req.K, req.R, req.Sigma, req.T, ot), nil
	case "black76":
		return c.PriceEuropeanBlack76(req.F0, req.K, req.R, req.Sigma, req.T, ot), nil
	case "digital":
		return c.PriceDigitalGBM(req.S0, req.K, req.R, req.Sigma, req.T, req.Payout, req.Cash, ot), nil
	case "asian":
		return c.PriceAsianGBM(req.S0, req.K, req.R, req.Sigma, req.T, ot, req.Floating, req.Geometric), nil
	case "lookback":
		return c.PriceLookbackGBM(req.S0, req.K, req.R, req.Sigma, req.T, ot, req.Floating), nil
	case "barrier":
		bt, err := barrierKind(req.Style)
		if err != nil {
			return 0, err
		}
		return c.PriceBarrierGBM(req.S0, req.K, req.Barrier, req.Rebate, req.R, req.Sigma, req.T, ot, bt), nil
	case "american":
		return c.PriceAmericanGBM(req.S0, req.K, req.R, req.Sigma, req.T, ot), nil
	case "bermudan":
		if len(req.Schedule) == 0 {
			return 0, fmt.Errorf("bermudan requires a non-empty schedule")
		}
		return c.PriceBermudanGBM(req.S0, req.K, req.R, req.Sigma, req.T, ot, pricing.ExerciseSchedule(req.Schedule)), nil
	case "heston":
		return c.PriceEuropeanHeston(req.S0, req.K, req.R, req.T, req.V0, req.Kappa, req.Theta, req.Xi, req.Rho, ot), nil
	case "sabr":
		return c.PriceEuropeanSABR(req.F0, req.K, req.Alpha, req.Beta, req.Rho, req.Nu, req.R, req.T, ot), nil
	case "merton":
		return c.PriceEuropeanMerton(req.S0, req.K, req.R, req.Sigma, req.T, req.Lambda, req.MuJ, req.SigmaJ, ot), nil
	default:
		return 0, fmt.Errorf("unknown model %q", model)
	}
}

func writePriceError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(priceResponse{Error: err.Error()})
}
