package transport

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/pkg/codec"
	"github.com/morezero/interactions/pkg/interaction"
)

const webhookLogPrefix = "transport:webhook"

// maxWebhookBody caps the size of an interaction payload.
const maxWebhookBody = 1 << 20

// WebhookOpts configures Webhook. Nil or zero values use defaults.
type WebhookOpts struct {
	// Timeout bounds one dispatch. Defaults to 3s.
	Timeout time.Duration
}

// Webhook is the HTTP endpoint Discord posts interactions to when the
// application has an interactions endpoint URL. Every request must carry a
// valid Ed25519 signature from Discord.
type Webhook struct {
	key     ed25519.PublicKey
	disp    Dispatcher
	timeout time.Duration
}

// NewWebhook creates a Webhook verifying against the application's public
// key, given in hex as shown in the developer portal.
func NewWebhook(publicKeyHex string, disp Dispatcher, opts *WebhookOpts) (*Webhook, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%s - invalid public key: %w", webhookLogPrefix, err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%s - invalid public key: got %d bytes, want %d", webhookLogPrefix, len(key), ed25519.PublicKeySize)
	}

	timeout := 3 * time.Second
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	return &Webhook{key: ed25519.PublicKey(key), disp: disp, timeout: timeout}, nil
}

func (h *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
	if !discordgo.VerifyInteraction(r, h.key) {
		slog.Debug(fmt.Sprintf("%s - rejected request with bad signature from %s", webhookLogPrefix, r.RemoteAddr))
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	var ev interaction.Event
	if err := codec.DecodePayload(body, &ev); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to decode interaction: %v", webhookLogPrefix, err))
		http.Error(w, "invalid interaction", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	resp := h.disp.Dispatch(ctx, ev)

	data, err := codec.EncodePayload(resp)
	if err != nil {
		slog.Error(fmt.Sprintf("%s - failed to encode response for %s: %v", webhookLogPrefix, ev.ID, err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to write response for %s: %v", webhookLogPrefix, ev.ID, err))
	}
}
