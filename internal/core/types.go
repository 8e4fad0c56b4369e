package core

// ContentType is the kind label a client attaches to a share. The server
// stores whatever label it receives; these are the ones sharebuttonctl sends.
type ContentType string

const (
	ContentTypeText    ContentType = "text"
	ContentTypeURL     ContentType = "url"
	ContentTypeCommand ContentType = "command"
	ContentTypeCode    ContentType = "code"
)

func (t ContentType) String() string { return string(t) }
