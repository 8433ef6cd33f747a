package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/flashdeck.git/internal/models"
)

var ErrFetchFailed = errors.New("fetch entries failed")

type EntriesAPI struct {
	baseURL string
	http    *http.Client
}

func NewEntriesAPI(baseURL string, timeout time.Duration) *EntriesAPI {
	return &EntriesAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type entryPayload struct {
	Question *string `json:"Question"`
	Answer   *string `json:"Answer"`
}

func (e *EntriesAPI) Entries(ctx context.Context, corpus string, count int) ([]models.Entry, error) {
	query := url.Values{}
	query.Set("n", strconv.Itoa(count))
	query.Set("corpus", corpus)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/flashcards?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	var payload []entryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrFetchFailed, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: payload is not an array", ErrFetchFailed)
	}

	result := make([]models.Entry, 0, len(payload))
	for i, p := range payload {
		if p.Question == nil || p.Answer == nil {
			return nil, fmt.Errorf("%w: entry %d is missing Question or Answer", ErrFetchFailed, i)
		}
		result = append(result, models.Entry{
			Question: *p.Question,
			Answer:   *p.Answer,
		})
	}

	return result, nil
}
