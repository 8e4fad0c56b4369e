package capture

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/its-jojoo/sharebutton/internal/core"
)

// Sender delivers a prepared share and returns the id the target assigned.
type Sender interface {
	Send(ctx context.Context, req core.ShareRequest) (int, error)
}

type Config struct {
	// Type labels every share; empty means detect per clip.
	Type core.ContentType
	// DedupeConsecutive skips a clip identical to the previous shared one.
	DedupeConsecutive bool
}

// Result describes a clip that was shared.
type Result struct {
	ID      int
	Content string
	Type    core.ContentType
}

// Service turns raw text (a clipboard change, a command-line argument) into
// a share: normalize, filter, dedupe, label, send.
type Service struct {
	sender  Sender
	privacy *core.PrivacyFilter
	cfg     Config
	now     func() time.Time

	lastFingerprint string
}

func New(sender Sender, privacy *core.PrivacyFilter, cfg Config) *Service {
	return &Service{sender: sender, privacy: privacy, cfg: cfg, now: time.Now}
}

// ProcessText shares raw unless it is empty, blocked by the privacy filter or
// a consecutive duplicate. The bool reports whether anything was sent.
func (s *Service) ProcessText(ctx context.Context, raw string) (*Result, bool, error) {
	content := core.Normalize(raw)
	if content == "" {
		return nil, false, nil
	}
	if s.privacy.Blocks(content) {
		return nil, false, nil
	}

	fp := core.Fingerprint(content)
	if s.cfg.DedupeConsecutive && fp == s.lastFingerprint {
		return nil, false, nil
	}

	typ := s.cfg.Type
	if typ == "" {
		typ = core.DetectType(content)
	}

	id, err := s.sender.Send(ctx, s.request(content, typ))
	if err != nil {
		return nil, false, err
	}

	s.lastFingerprint = fp
	return &Result{ID: id, Content: content, Type: typ}, true, nil
}

// request mirrors what the mobile client posts: the label plus the capture
// time as epoch milliseconds.
func (s *Service) request(content string, typ core.ContentType) core.ShareRequest {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	return core.NewShareRequest(content, typ, json.RawMessage(ts))
}
