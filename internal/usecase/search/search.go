package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/its-jojoo/sharebutton/internal/core"
)

// Source lists the shares held by a target.
type Source interface {
	ListShares(ctx context.Context) ([]core.SharedItem, error)
}

type Options struct {
	Limit int
	Now   time.Time // optional, for tests
}

type Service struct {
	source Source
}

func New(source Source) *Service {
	return &Service{source: source}
}

// Query ranks shares whose content or type contains q. Exact and prefix
// matches beat substrings, recent shares get a boost, and ties go to the
// newer id. An empty query returns nothing.
func (s *Service) Query(ctx context.Context, q string, opt Options) ([]core.SharedItem, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, nil
	}
	if opt.Limit <= 0 {
		opt.Limit = 20
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	items, err := s.source.ListShares(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		it    core.SharedItem
		score int
	}
	hits := make([]scored, 0, len(items))

	for _, it := range items {
		score := scoreMatch(strings.ToLower(it.Content), q)
		if score == 0 && len(it.Type) > 0 && strings.EqualFold(it.TypeLabel(), q) {
			score = 500
		}
		if score == 0 {
			continue
		}
		if at, err := it.ReceivedTime(); err == nil {
			score += recencyBoost(now.Sub(at))
		}
		hits = append(hits, scored{it: it, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].it.ID > hits[j].it.ID
	})

	n := min(opt.Limit, len(hits))
	out := make([]core.SharedItem, 0, n)
	for _, h := range hits[:n] {
		out = append(out, h.it)
	}
	return out, nil
}

func scoreMatch(s, q string) int {
	switch {
	case s == q:
		return 3000
	case strings.HasPrefix(s, q):
		return 2000
	}
	if idx := strings.Index(s, q); idx >= 0 {
		// earlier hits rank slightly higher
		return 1000 + max(0, 200-idx)
	}
	return 0
}

func recencyBoost(age time.Duration) int {
	switch {
	case age < 10*time.Minute:
		return 400
	case age < time.Hour:
		return 250
	case age < 24*time.Hour:
		return 120
	case age < 7*24*time.Hour:
		return 40
	}
	return 0
}
