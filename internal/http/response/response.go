package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data with the given status. Payload shapes are fixed by the
// frontend contract: {}, {"msg": ...}, {"time_left": ..., "msg": ...},
// {"uid": ...}, or a field map.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Empty writes an empty JSON object.
func Empty(w http.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// Msg writes a human-readable error message.
func Msg(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"msg": msg})
}
