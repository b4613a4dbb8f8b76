package httpapi

import (
	"encoding/json"
	"net/http"
)

// statusResponse is the envelope the mobile client expects: "ok"/"erro" plus
// a human-readable message in Portuguese.
type statusResponse struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeOK(w http.ResponseWriter, code int, mensagem string) {
	writeJSON(w, code, statusResponse{Status: "ok", Mensagem: mensagem})
}

func writeError(w http.ResponseWriter, code int, mensagem string) {
	writeJSON(w, code, statusResponse{Status: "erro", Mensagem: mensagem})
}
