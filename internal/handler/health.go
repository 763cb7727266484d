package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mlorentedev/emailwriter/internal/adapter"
	"github.com/mlorentedev/emailwriter/internal/metrics"
)

type modelStatus struct {
	adapter.ModelInfo
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status string      `json:"status"`
	Model  modelStatus `json:"model"`
}

func Health(model adapter.Model, info adapter.ModelInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := modelStatus{ModelInfo: info, Available: model.Available()}
		if s.Available {
			metrics.ModelAvailable.Set(1)
		} else {
			metrics.ModelAvailable.Set(0)
			s.Reason = unavailableReason(model)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status: "ok",
			Model:  s,
		})
	}
}

func unavailableReason(m adapter.Model) string {
	switch m.(type) {
	case *adapter.GeminiAdapter:
		return "no API key"
	default:
		return "unavailable"
	}
}
