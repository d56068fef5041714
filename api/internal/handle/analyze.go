package handle

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"explain-this/api/internal/simplify"
)

// optionalString records whether a key was present and whether it held null.
type optionalString struct {
	set   bool
	null  bool
	value string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

type analyzeBody struct {
	Text       optionalString `json:"text"`
	Complexity optionalString `json:"complexity"`
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeBody reads exactly one JSON value from r.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return errTrailingData
		}
		return err
	}
	return nil
}

func (b analyzeBody) request() simplify.AnalyzeRequest {
	req := simplify.AnalyzeRequest{Text: b.Text.value}
	switch {
	case b.Complexity.null:
		req.ComplexityNull = true
	case b.Complexity.set:
		c := b.Complexity.value
		req.Complexity = &c
	}
	return req
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body analyzeBody
	if err := decodeBody(r.Body, &body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, "bad json: "+err.Error())
		return
	}
	if !body.Text.set || body.Text.null {
		writeError(w, http.StatusUnprocessableEntity, "text: field required")
		return
	}

	// The dispatcher adds no deadline; the request context carries client cancellation.
	res, err := h.disp.Analyze(r.Context(), body.request())
	if err != nil {
		kind := simplify.KindOf(err)
		code := StatusFor(kind)
		if kind.IsClientError() {
			h.log.Debug("analyze rejected", "kind", kind, "detail", err.Error())
		} else {
			h.log.Error("analyze failed", "kind", kind, "error", err)
		}
		writeError(w, code, err.Error())
		return
	}

	h.log.Info("analyze ok",
		"complexity", res.Complexity,
		"original_chars", len([]rune(res.Original)),
		"simplified_chars", len([]rune(res.Simplified)),
	)
	writeJSON(w, http.StatusOK, res)
}
