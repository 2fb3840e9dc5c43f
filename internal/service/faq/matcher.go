package faq

import (
	"strings"

	"github.com/techmayne/photobot/internal/domain"
)

// fuzzyMatchThreshold is the fraction of significant query tokens that
// must overlap an FAQ question for the fuzzy pass to accept it. Chosen
// policy: > 0.5, no answer-text fallback.
const fuzzyMatchThreshold = 0.5

// minTokenLen: tokens this short carry no signal in the fuzzy pass, so a
// query under 4 characters can only be matched by keywords.
const minTokenLen = 3

// Match runs the two-pass heuristic over a tenant's FAQ set. Entries are
// scanned in stored order and the first hit wins; there is no scoring.
func Match(faqs []domain.FAQEntry, query string) domain.FAQMatch {
	if len(faqs) == 0 {
		return domain.FAQMatch{Found: false}
	}

	queryLower := strings.ToLower(query)

	// Pass 1: keyword substring containment.
	for _, entry := range faqs {
		for _, keyword := range entry.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				return domain.FAQMatch{Found: true, Answer: entry.Answer, Question: entry.Question}
			}
		}
	}

	// Pass 2: fuzzy word overlap against each FAQ's question text.
	queryWords := strings.Fields(queryLower)
	if len(queryWords) == 0 {
		return domain.FAQMatch{Found: false}
	}

	for _, entry := range faqs {
		faqWords := strings.Fields(strings.ToLower(entry.Question))

		matches := 0
		for _, word := range queryWords {
			if len(word) <= minTokenLen {
				continue
			}
			for _, faqWord := range faqWords {
				if strings.Contains(faqWord, word) || strings.Contains(word, faqWord) {
					matches++
					break
				}
			}
		}

		if float64(matches)/float64(len(queryWords)) > fuzzyMatchThreshold {
			return domain.FAQMatch{Found: true, Answer: entry.Answer, Question: entry.Question}
		}
	}

	return domain.FAQMatch{Found: false}
}
