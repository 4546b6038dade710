package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthCheck is the only unauthenticated probe besides register/login.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
