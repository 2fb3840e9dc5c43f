package faq

import (
	"testing"

	"github.com/techmayne/photobot/internal/domain"
)

func sampleFAQs() []domain.FAQEntry {
	return []domain.FAQEntry{
		{
			Question: "What are your prices?",
			Answer:   "Packages start at $2,500.",
			Keywords: []string{"price", "cost", "rate"},
		},
		{
			Question: "Do you travel for weddings?",
			Answer:   "Yes, travel is available worldwide.",
			Keywords: []string{"travel", "destination"},
		},
		{
			Question: "How long until photos are delivered?",
			Answer:   "Galleries are delivered within 4-6 weeks.",
			Keywords: []string{"delivery", "turnaround"},
		},
	}
}

func TestMatch_KeywordSubstring(t *testing.T) {
	match := Match(sampleFAQs(), "what does a wedding cost?")

	if !match.Found {
		t.Fatal("expected a match")
	}
	if match.Question != "What are your prices?" {
		t.Errorf("expected pricing FAQ, got '%s'", match.Question)
	}
}

func TestMatch_KeywordIsCaseInsensitive(t *testing.T) {
	match := Match(sampleFAQs(), "Do you offer DESTINATION packages?")

	if !match.Found {
		t.Fatal("expected a match")
	}
	if match.Answer != "Yes, travel is available worldwide." {
		t.Errorf("unexpected answer: %s", match.Answer)
	}
}

func TestMatch_FirstKeywordHitWins(t *testing.T) {
	// "cost" (first entry) and "travel" (second entry) both appear; stored
	// order decides.
	match := Match(sampleFAQs(), "cost of travel")

	if !match.Found {
		t.Fatal("expected a match")
	}
	if match.Question != "What are your prices?" {
		t.Errorf("expected first entry to win, got '%s'", match.Question)
	}
}

func TestMatch_FuzzyWordOverlap(t *testing.T) {
	match := Match(sampleFAQs(), "what are your prices like")

	if !match.Found {
		t.Fatal("expected fuzzy match")
	}
	if match.Question != "What are your prices?" {
		t.Errorf("expected pricing FAQ, got '%s'", match.Question)
	}
}

func TestMatch_NoMatchBelowThreshold(t *testing.T) {
	match := Match(sampleFAQs(), "how much do u charge")

	if match.Found {
		t.Errorf("expected no match, got '%s'", match.Question)
	}
}

func TestMatch_ShortTokensCarryNoSignal(t *testing.T) {
	// Every token is at or under the length cutoff, so the fuzzy pass can
	// never accept.
	match := Match(sampleFAQs(), "do you go far")

	if match.Found {
		t.Errorf("expected no match, got '%s'", match.Question)
	}
}

func TestMatch_EmptyFAQSet(t *testing.T) {
	match := Match(nil, "what are your prices")

	if match.Found {
		t.Error("expected no match against empty set")
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	match := Match(sampleFAQs(), "")

	if match.Found {
		t.Error("expected no match for empty query")
	}
}
