package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// Envelope is the wire shape every handler responds with. Handlers set
// exactly one of Data, Message, or the extra top-level fields in Extra.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    any            `json:"data,omitempty"`
	Details any            `json:"details,omitempty"`
	Extra   map[string]any `json:"-"`
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": e.Success}
	if e.Message != "" {
		out["message"] = e.Message
	}
	if e.Data != nil {
		out["data"] = e.Data
	}
	if e.Details != nil {
		out["details"] = e.Details
	}
	for k, v := range e.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: true, Message: message})
}

// WriteMessageFailure emits a failure envelope with a literal message, for
// routing-level rejections that never pass through the error taxonomy.
func WriteMessageFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

// WritePayload emits success plus arbitrary top-level fields, for
// responses whose shape carries siblings next to "success" (token,
// seller, summary counts).
func WritePayload(w http.ResponseWriter, status int, fields map[string]any) {
	writeJSON(w, status, Envelope{Success: true, Extra: fields})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if typed.Code() != pkgerrors.CodeInternal {
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := Envelope{Success: false, Message: msg}
	if meta.DetailsAllowed {
		payload.Details = typed.Details()
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"error_code":  string(typed.Code()),
			"http_status": meta.HTTPStatus,
		})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(logg.WithField(ctx, "error", err.Error()), "request.rejected")
		}
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
