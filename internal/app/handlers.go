package app

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/anthurium-ai/txn-classify/internal/classify"
	"github.com/anthurium-ai/txn-classify/internal/importer"
	"github.com/anthurium-ai/txn-classify/internal/logger"
)

type classifyResponse struct {
	Category classify.CategoryResult `json:"category"`
	Type     classify.TypeResult     `json:"type"`
}

func (a *App) handleClassify(w http.ResponseWriter, r *http.Request) {
	var in classify.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	cat, typ := a.Engine.Classify(r.Context(), in)
	writeJSON(w, classifyResponse{Category: cat, Type: typ})
}

type csvResponse struct {
	Results []classifyResponse `json:"results"`
	Skipped int                `json:"skipped"`
}

// handleClassifyCSV classifies every row of an uploaded bank-export CSV.
func (a *App) handleClassifyCSV(w http.ResponseWriter, r *http.Request) {
	f, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	limited := io.LimitReader(f, 25*1024*1024)
	inputs, skipped, err := importer.ReadCSV(limited)
	if err != nil {
		http.Error(w, "parse failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	resp := csvResponse{Skipped: skipped, Results: make([]classifyResponse, 0, len(inputs))}
	for _, in := range inputs {
		cat, typ := a.Engine.Classify(r.Context(), in)
		resp.Results = append(resp.Results, classifyResponse{Category: cat, Type: typ})
	}
	writeJSON(w, resp)
}

type addMerchantRequest struct {
	Merchant string `json:"merchant"`
	Category string `json:"category"`
}

// handleAddMerchant learns one merchant mapping: index, store, and predictor
// are all updated so the correction sticks across restarts.
func (a *App) handleAddMerchant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req addMerchantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.Merchant = strings.TrimSpace(req.Merchant)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.Merchant == "" || req.Category == "" {
		http.Error(w, "merchant and category are required", http.StatusBadRequest)
		return
	}
	if err := a.Engine.Learn(req.Merchant, req.Category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if a.Store != nil {
		if err := a.Store.Upsert(r.Context(), strings.ToLower(req.Merchant), req.Category); err != nil {
			log.Error().Err(err).Msg("persist learned merchant")
			http.Error(w, "persist failed", http.StatusInternalServerError)
			return
		}
	}
	if a.Predictor != nil {
		if err := a.Predictor.Train(req.Category, req.Merchant, "", "", ""); err != nil {
			log.Warn().Err(err).Msg("train on learned merchant")
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
