package handle

import "net/http"

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	AIService bool   `json:"ai_service"`
}

func (h *Handle) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "online",
		Message:   "ExplainThis.ai API is running!",
		AIService: h.disp.Available(),
	})
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Message:   "All systems operational",
		AIService: h.disp.Available(),
	})
}
