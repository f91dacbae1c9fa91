package events

import (
	"encoding/json"
	"time"
)

const (
	TypePing             = "ping"
	TypeBookmarkToggled  = "bookmark_toggled"
	TypeJobsReloaded     = "jobs_reloaded"
	TypeCacheInvalidated = "cache_invalidated"
)

// Version of every payload below.
const Version = 1

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type BookmarkToggled struct {
	ID         int  `json:"id"`
	Bookmarked bool `json:"bookmarked"`
}

type JobsReloaded struct {
	Path string `json:"path"`
	Jobs int    `json:"jobs"`
}

type CacheInvalidated struct {
	Path string `json:"path,omitempty"` // empty when every entry was dropped
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
