package contact

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiagofholanda/portfolio-contact/pkg/logger"
	"github.com/tiagofholanda/portfolio-contact/pkg/throttle"
)

// maxBodyBytes caps the size of a submission body.
const maxBodyBytes = 64 << 10

// Submitter runs the contact pipeline. *Service implements it.
type Submitter interface {
	Submit(ctx context.Context, req Request) Outcome
}

// Handler exposes the contact pipeline over HTTP.
type Handler struct {
	service Submitter
	limiter throttle.Limiter
	logger  *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLimiter enables per-client cooldown. A submission reserves the client's
// window before sending and releases it unless the message was relayed.
func WithLimiter(l throttle.Limiter) HandlerOption {
	return func(h *Handler) {
		h.limiter = l
	}
}

// WithHandlerLogger sets the logger for request-level events.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates an HTTP handler for contact submissions.
func NewHandler(service Submitter, opts ...HandlerOption) *Handler {
	h := &Handler{
		service: service,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the contact endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

// Response is the JSON body returned for every submission.
type Response struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Detail       string `json:"detail,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
}

// Submit handles POST /contact with a JSON or form-encoded body.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeRequest(w, r)
	if err != nil {
		h.logger.InfoContext(ctx, "contact request rejected", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  "bad_request",
			Message: msgBadRequest,
		})
		return
	}

	key := clientKey(r)
	reserved := false
	if h.limiter != nil {
		ok, err := h.limiter.Reserve(ctx, key)
		switch {
		case err != nil:
			// Fail open on limiter errors.
			h.logger.WarnContext(ctx, "throttle reservation failed", slog.String("error", err.Error()))
		case !ok:
			writeJSON(w, http.StatusTooManyRequests, Response{
				Status:  "throttled",
				Message: msgThrottled,
			})
			return
		default:
			reserved = true
		}
	}

	out := h.service.Submit(ctx, req)

	// Only a relayed message keeps the client cooling down.
	if reserved && !out.OK() {
		if err := h.limiter.Release(context.WithoutCancel(ctx), key); err != nil {
			h.logger.WarnContext(ctx, "failed to release cooldown", slog.String("error", err.Error()))
		}
	}

	resp := Response{
		Status:       out.Kind.String(),
		Message:      message(out.Kind),
		SubmissionID: out.SubmissionID,
	}
	if !out.OK() && !out.Kind.IsInputError() {
		resp.Detail = out.Diagnostic
	}

	writeJSON(w, StatusCode(out.Kind), resp)
}

// StatusCode maps an outcome kind to an HTTP status.
func StatusCode(k Kind) int {
	switch k {
	case KindSuccess:
		return http.StatusOK
	case KindMissingFields, KindInvalidEmail:
		return http.StatusUnprocessableEntity
	case KindMissingConfig:
		return http.StatusServiceUnavailable
	case KindAuthFailed, KindTransportFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

const (
	msgSuccess       = "Mensagem enviada com sucesso! Obrigado pelo contato."
	msgMissingFields = "Por favor, preencha todos os campos!"
	msgInvalidEmail  = "Por favor, insira um endereço de e-mail válido."
	msgMissingConfig = "Configurações de e-mail não encontradas. Tente novamente mais tarde."
	msgSendFailed    = "Erro ao enviar e-mail. Tente novamente mais tarde."
	msgUnexpected    = "Erro inesperado. Tente novamente mais tarde."
	msgThrottled     = "Aguarde um momento antes de enviar outra mensagem."
	msgBadRequest    = "Não foi possível ler o formulário enviado."
)

func message(k Kind) string {
	switch k {
	case KindSuccess:
		return msgSuccess
	case KindMissingFields:
		return msgMissingFields
	case KindInvalidEmail:
		return msgInvalidEmail
	case KindMissingConfig:
		return msgMissingConfig
	case KindAuthFailed, KindTransportFailed:
		return msgSendFailed
	default:
		return msgUnexpected
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return Request{}, errors.Join(ErrMalformedRequest, err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return Request{}, errors.Join(ErrMalformedRequest, err)
	}
	return Request{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}, nil
}

// clientKey identifies the submitter by IP. RemoteAddr is expected to be
// rewritten by a real-IP middleware when running behind a proxy.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
