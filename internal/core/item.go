package core

import (
	"encoding/json"
	"time"
)

// SharedItem is one piece of content received from a client.
//
// Type and Timestamp are kept exactly as the client sent them, whatever their
// JSON kind. Absent values serialize as null.
type SharedItem struct {
	ID         int             `json:"id"`
	Content    string          `json:"content"`
	Type       json.RawMessage `json:"type"`
	Timestamp  json.RawMessage `json:"timestamp"`
	ReceivedAt string          `json:"receivedAt"`
}

// ReceivedTime parses ReceivedAt back into a local time.
func (it SharedItem) ReceivedTime() (time.Time, error) {
	return ParseLocal(it.ReceivedAt)
}

// TypeLabel renders Type for display: the string itself when the client sent
// a string, the JSON text otherwise, empty when absent.
func (it SharedItem) TypeLabel() string {
	return rawText(it.Type)
}

// ShareRequest is the body accepted by the share endpoint. Fields stay raw so
// any JSON value a client sends can be judged or stored as is.
type ShareRequest struct {
	Content   json.RawMessage `json:"content"`
	Type      json.RawMessage `json:"type,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// NewShareRequest builds a request with string content and type label.
func NewShareRequest(content string, typ ContentType, timestamp json.RawMessage) ShareRequest {
	req := ShareRequest{Content: quote(content), Timestamp: timestamp}
	if typ != "" {
		req.Type = quote(typ.String())
	}
	return req
}

// Validate reports a ValidationError when content is missing or falsy:
// null, false, 0, "", [] and {} all count as missing.
func (r ShareRequest) Validate() error {
	if !Truthy(r.Content) {
		return &ValidationError{Field: "content", Message: MsgContentRequired}
	}
	return nil
}

// Item builds the unsaved SharedItem for a valid request. ID and ReceivedAt
// are assigned by the store. Non-string content is kept as its JSON text.
func (r ShareRequest) Item() SharedItem {
	return SharedItem{
		Content:   rawText(r.Content),
		Type:      nullToNil(r.Type),
		Timestamp: nullToNil(r.Timestamp),
	}
}

// ShareTarget tells a client where to send shares.
type ShareTarget struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Endpoint string `json:"endpoint"`
}

func quote(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
