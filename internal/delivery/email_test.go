package delivery

import (
	"strings"
	"testing"
	"time"

	"github.com/strategic-council/screener/models"
)

func TestWrapHTML(t *testing.T) {
	now := time.Date(2025, 3, 15, 7, 0, 0, 0, time.UTC)
	body := wrapHTML(models.Weekly, "<h3>CHAPTER 1</h3><p>content</p>", now)

	if !strings.Contains(body, "Strategic Council") {
		t.Error("header missing")
	}
	if !strings.Contains(body, "Weekly Strategy") {
		t.Error("cadence label missing")
	}
	if !strings.Contains(body, "2025-03-15 07:00 UTC") {
		t.Error("timestamp missing")
	}
	if !strings.Contains(body, "<p>content</p>") {
		t.Error("report body missing")
	}
	if !strings.Contains(body, "Not investment advice") {
		t.Error("footer missing")
	}
}
