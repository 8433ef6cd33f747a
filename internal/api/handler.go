package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/DanRulev/flashdeck.git/internal/models"
	"github.com/DanRulev/flashdeck.git/internal/service"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mock/handler_mock.go

type CorpusSI interface {
	Entries(ctx context.Context, corpus string, n int) ([]models.Entry, error)
	UploadItems(ctx context.Context, corpus, body string) (int, error)
	UploadWords(ctx context.Context, corpus, body string) (int, error)
	Corpus(ctx context.Context, corpus string) (models.Corpus, error)
	Clear(ctx context.Context, corpus string) (items, words int64, err error)
}

const defaultCount = 10

type Handler struct {
	service CorpusSI
	timeout time.Duration
	log     *zap.Logger
}

func NewHandler(service CorpusSI, timeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (h *Handler) flashcards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, ok := h.parseInt(w, q.Get("n"), defaultCount)
	if !ok {
		return
	}
	corpus, ok := h.corpus(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	entries, err := h.service.Entries(ctx, corpus, n)
	if errors.Is(err, service.ErrBadCount) {
		h.errorf(w, http.StatusBadRequest, "bad number: %v", err)
		return
	}
	if err != nil {
		h.errorf(w, http.StatusInternalServerError, "loading entries: %v", err)
		return
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	body, err := json.Marshal(entries)
	if err != nil {
		h.errorf(w, http.StatusInternalServerError, "encoding entries: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

type uploadFunc func(ctx context.Context, corpus, body string) (int, error)

// upload reads a TSV body and hands it to save. kind names the rows in replies.
func (h *Handler) upload(kind string, save uploadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		corpus, ok := h.corpus(w, r)
		if !ok {
			return
		}

		body, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			h.errorf(w, http.StatusBadRequest, "bad body: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		n, err := save(ctx, corpus, string(body))
		if errors.Is(err, service.ErrBadEntries) {
			h.errorf(w, http.StatusBadRequest, "parsing %s: %v", kind, err)
			return
		}
		if err != nil {
			h.errorf(w, http.StatusInternalServerError, "saving %s: %v", kind, err)
			return
		}

		fmt.Fprintf(w, "Got %d %s.\n", n, kind)
	}
}

var showCorpusTemplate = template.Must(template.New("").Parse(`
<html>
  <body>
    <h1>{{.Name}}</h1>
    <h2>Items</h2>
    <table>
	  {{range .Items}}
		 <tr><td>{{.Question}}</td><td>{{.Answer}}</td><td>{{.Script}}</td></tr>
	  {{else}}
		 Nothing there.
	  {{end}}
    </table>
    <h2>Words</h2>
    <table>
	  {{range .Words}}
		 <tr><td>{{.Gloss}}</td><td>{{.Reading}}</td><td>{{.PartOfSpeech}}</td><td>{{.Script}}</td></tr>
	  {{else}}
		 Nothing there.
	  {{end}}
    </table>
  </body>
</html>
`))

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	corpus, ok := h.corpus(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	corp, err := h.service.Corpus(ctx, corpus)
	if err != nil {
		h.errorf(w, http.StatusInternalServerError, "loading corpus: %v", err)
		return
	}

	var buf bytes.Buffer
	if err := showCorpusTemplate.Execute(&buf, corp); err != nil {
		h.errorf(w, http.StatusInternalServerError, "executing template: %v", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	corpus, ok := h.corpus(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, words, err := h.service.Clear(ctx, corpus)
	if err != nil {
		h.errorf(w, http.StatusInternalServerError, "deleting: %v", err)
		return
	}

	fmt.Fprintf(w, "Deleted %d items and %d words.\n", items, words)
}

func (h *Handler) corpus(w http.ResponseWriter, r *http.Request) (string, bool) {
	corpus := r.URL.Query().Get("corpus")
	if corpus == "" {
		h.errorf(w, http.StatusBadRequest, "need corpus")
		return "", false
	}
	return corpus, true
}

func (h *Handler) parseInt(w http.ResponseWriter, sn string, defaultValue int) (int, bool) {
	if sn == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(sn)
	if err != nil {
		h.errorf(w, http.StatusBadRequest, "bad number: %v", err)
		return 0, false
	}
	return n, true
}

func (h *Handler) errorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	http.Error(w, msg, status)
	if status >= http.StatusInternalServerError {
		h.log.Error(msg, zap.Int("status", status))
		return
	}
	h.log.Info(msg, zap.Int("status", status))
}
