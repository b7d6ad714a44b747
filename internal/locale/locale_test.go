package locale

import (
	"strings"
	"testing"
)

func TestPrinterEnglish(t *testing.T) {
	p := NewPrinter("en")
	msg := p.T(KeyMandatoryPlanMissing, "Lodging")
	if !strings.Contains(msg, "Lodging") {
		t.Errorf("expected category name in message, got %q", msg)
	}
	if p.T(KeyActivityDisabled) == KeyActivityDisabled {
		t.Error("expected a rendered message, got the raw key")
	}
}

func TestPrinterJapanese(t *testing.T) {
	p := NewPrinter("ja")
	msg := p.T(KeyCannotAddDisabled, "フルウィーク")
	if !strings.Contains(msg, "フルウィーク") {
		t.Errorf("expected plan name in message, got %q", msg)
	}
	if !strings.Contains(msg, "受付終了") {
		t.Errorf("expected japanese text, got %q", msg)
	}
}

func TestPrinterWeightedAcceptLanguageHeader(t *testing.T) {
	p := NewPrinter("ja,en;q=0.9", "en")
	msg := p.T(KeyActivityDisabled)
	if !strings.Contains(msg, "受付終了") {
		t.Errorf("expected japanese for a weighted header preferring ja, got %q", msg)
	}
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	p := NewPrinter("xx-nonsense", "")
	msg := p.T(KeyCannotRemoveDisabled, "Dorm")
	if !strings.Contains(msg, "no longer offered") {
		t.Errorf("expected english fallback, got %q", msg)
	}
}
