// Package api serves the site endpoints used by the showcase: the contact
// mail relay, a cached blog proxy and the remote progress relay (necs
// over websocket, on its own port).
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/automoto/coffeeon/blog"
	"github.com/automoto/coffeeon/contact"
	"github.com/rs/zerolog/log"
)

const maxRequestBody = 1 << 16 // 64 KB

// PostSource is the part of blog.Client the handlers need
type PostSource interface {
	Posts(ctx context.Context) []blog.Post
	PostBySlug(ctx context.Context, slug string) (blog.Post, bool)
	Similar(ctx context.Context, excludeID, n int) []blog.Post
}

type postResponse struct {
	Post    blog.Post   `json:"post"`
	Similar []blog.Post `json:"similar"`
}

// SendMail relays a contact message as received. 200 {"success":true} on
// delivery; any failure, including an undecodable body, is 500
// {"success":false}. Validation belongs to the form.
func SendMail(m contact.Mailer, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var msg contact.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			log.Warn().Str("component", "api").Err(err).Msg("contact payload unreadable")
			writeJSON(w, http.StatusInternalServerError, contact.Result{Success: false})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		if err := m.Send(ctx, msg); err != nil {
			log.Error().Str("component", "api").Err(err).Msg("contact relay failed")
			writeJSON(w, http.StatusInternalServerError, contact.Result{Success: false})
			return
		}

		log.Info().Str("component", "api").Str("from", msg.Email).Msg("contact message relayed")
		writeJSON(w, http.StatusOK, contact.Result{Success: true})
	}
}

// writeJSON writes v with status code. Errors are logged; the header is
// already gone by then.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Str("component", "api").Err(err).Int("status", code).Msg("response encode error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListPosts returns the latest posts; always a JSON array
func ListPosts(src PostSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(src.Posts(r.Context())); err != nil {
			log.Error().Str("component", "api").Err(err).Msg("posts encode error")
		}
	}
}

// GetPost returns one post by slug plus similar posts
func GetPost(src PostSource, similar int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		post, ok := src.PostBySlug(r.Context(), r.PathValue("slug"))
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "post not found"})
			return
		}
		writeJSON(w, http.StatusOK, postResponse{Post: post, Similar: src.Similar(r.Context(), post.ID, similar)})
	}
}

// Progress reports the relay's latest accepted update
func Progress(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		writeJSON(w, http.StatusOK, h.Latest())
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// Deps are the collaborators of the HTTP surface
type Deps struct {
	Mailer      contact.Mailer
	Posts       PostSource
	Hub         *Hub
	MailTimeout time.Duration
	SimilarSize int
}

// NewMux wires every route
func NewMux(d Deps) *http.ServeMux {
	if d.MailTimeout <= 0 {
		d.MailTimeout = 15 * time.Second
	}
	if d.SimilarSize <= 0 {
		d.SimilarSize = 3
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sendMail", SendMail(d.Mailer, d.MailTimeout))
	mux.HandleFunc("GET /api/posts", ListPosts(d.Posts))
	mux.HandleFunc("GET /api/posts/{slug}", GetPost(d.Posts, d.SimilarSize))
	if d.Hub != nil {
		mux.HandleFunc("GET /api/progress", Progress(d.Hub))
	}
	mux.HandleFunc("GET /health", Health())
	return mux
}

// Serve runs srv until ctx ends, then shuts it down gracefully
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
