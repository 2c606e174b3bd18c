package main

import (
	"fmt"
	"time"
)

// closeRecord is one entry of the owner's close log.
type closeRecord struct {
	key string
	at  time.Time
	how string
}

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	default:
		icon = ""
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (r closeRecord) String() string {
	return noticeText(fmt.Sprintf("%s closed (%s) at %s", shortKey(r.key), r.how, r.at.Format("15:04:05.000")), "success")
}

func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
