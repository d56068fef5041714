package handle

import "net/http"

type placeholderResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Login is not implemented yet; it always answers with a placeholder.
func (h *Handle) Login(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, placeholderResponse{
		Message: "Login endpoint - To be implemented",
		Status:  "coming_soon",
	})
}

// Save is not implemented yet; history is not persisted.
func (h *Handle) Save(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, placeholderResponse{
		Message: "Save endpoint - To be implemented",
		Status:  "coming_soon",
	})
}
