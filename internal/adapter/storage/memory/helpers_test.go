package memory

import "github.com/its-jojoo/sharebutton/internal/core"

func sharedItem(content string) core.SharedItem {
	return core.SharedItem{Content: content}
}
