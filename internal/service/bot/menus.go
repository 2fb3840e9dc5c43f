package bot

import (
	"strings"

	"github.com/techmayne/photobot/internal/domain"
)

// serviceButtonLabels maps service keys to quick-reply labels.
var serviceButtonLabels = map[string]string{
	"wedding":    "Wedding",
	"engagement": "Engagement",
	"elopement":  "Elopement",
	"portrait":   "Portrait Session",
	"corporate":  "Corporate Event",
	"family":     "Family Session",
	"maternity":  "Maternity",
	"other":      "Other Event",
}

// serviceDisplayNames maps service keys to in-sentence phrasing
// ("When is your portrait session?").
var serviceDisplayNames = map[string]string{
	"wedding":    "wedding",
	"engagement": "engagement session",
	"elopement":  "elopement",
	"portrait":   "portrait session",
	"corporate":  "corporate event",
	"family":     "family session",
	"maternity":  "maternity session",
	"other":      "event",
}

// servicePluralLabels maps service keys to the plural phrasing used in the
// dynamic services FAQ answer.
var servicePluralLabels = map[string]string{
	"wedding":    "weddings",
	"engagement": "engagement sessions",
	"elopement":  "elopements",
	"portrait":   "portrait sessions",
	"corporate":  "corporate events",
	"family":     "family sessions",
	"maternity":  "maternity photography",
	"other":      "other events",
}

// servicesFAQQuestion is the canonical FAQ whose answer is rebuilt from the
// tenant's configured service list.
const servicesFAQQuestion = "What services do you offer?"

var coverageButtons = []domain.Button{
	{Label: "4-6 hours", Action: "4-6 hours"},
	{Label: "6-8 hours", Action: "6-8 hours"},
	{Label: "8-10 hours", Action: "8-10 hours"},
	{Label: "Full day (10+ hours)", Action: "full day"},
	{Label: "Not sure yet", Action: "not sure"},
}

func mainMenuButtons() []domain.Button {
	return []domain.Button{
		{Label: "Check Availability", Action: domain.ActionCheckAvailability},
		{Label: "View Packages & Pricing", Action: domain.ActionViewPackages},
		{Label: "Ask a Question", Action: domain.ActionAskQuestion},
	}
}

func completionMenuButtons() []domain.Button {
	return []domain.Button{
		{Label: "Check Availability", Action: domain.ActionCheckAvailability},
		{Label: "Ask Another Question", Action: domain.ActionAskQuestion},
		{Label: "I'm all set!", Action: domain.ActionComplete},
	}
}

func wrapUpButtons() []domain.Button {
	return []domain.Button{
		{Label: "Ask Another Question", Action: domain.ActionAskQuestion},
		{Label: "I'm all set!", Action: domain.ActionComplete},
	}
}

// clientServices returns the tenant's configured service keys, falling
// back to the shared default list.
func clientServices(client *domain.Client) []string {
	if len(client.ServicesOffered) > 0 {
		return client.ServicesOffered
	}
	return domain.DefaultServices
}

func eventTypeButtons(client *domain.Client) []domain.Button {
	services := clientServices(client)
	buttons := make([]domain.Button, 0, len(services))
	for _, svc := range services {
		label := serviceButtonLabels[svc]
		if label == "" {
			label = svc
		}
		buttons = append(buttons, domain.Button{Label: label, Action: svc})
	}
	return buttons
}

func isOfferedService(client *domain.Client, input string) bool {
	lowered := strings.ToLower(input)
	for _, svc := range clientServices(client) {
		if strings.ToLower(svc) == lowered {
			return true
		}
	}
	return false
}

func eventDisplayName(eventKey string) string {
	if name, ok := serviceDisplayNames[strings.ToLower(eventKey)]; ok {
		return name
	}
	return eventKey
}

func isCoverageOption(input string) bool {
	lowered := strings.ToLower(input)
	for _, b := range coverageButtons {
		if b.Action == lowered {
			return true
		}
	}
	return false
}

// servicesAnswer builds the natural-language service list for the dynamic
// services FAQ ("weddings, elopements, and portrait sessions").
func servicesAnswer(services []string) string {
	labels := make([]string, 0, len(services))
	for _, svc := range services {
		if label, ok := servicePluralLabels[svc]; ok {
			labels = append(labels, label)
		} else if svc != "" {
			labels = append(labels, svc)
		}
	}
	if len(labels) == 0 {
		return ""
	}

	var list string
	if len(labels) == 1 {
		list = labels[0]
	} else {
		list = strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
	return "I offer " + list + ". Each service can be customized to fit your specific needs and vision!"
}
