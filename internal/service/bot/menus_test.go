package bot

import (
	"testing"

	"github.com/techmayne/photobot/internal/domain"
)

func TestEventTypeButtons_FallsBackToDefaults(t *testing.T) {
	buttons := eventTypeButtons(&domain.Client{})

	if len(buttons) != len(domain.DefaultServices) {
		t.Fatalf("expected %d buttons, got %d", len(domain.DefaultServices), len(buttons))
	}
	if buttons[0].Label != "Wedding" || buttons[0].Action != "wedding" {
		t.Errorf("unexpected first button: %+v", buttons[0])
	}
}

func TestEventTypeButtons_UsesConfiguredServices(t *testing.T) {
	client := &domain.Client{ServicesOffered: []string{"wedding", "portrait"}}

	buttons := eventTypeButtons(client)

	if len(buttons) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(buttons))
	}
	if buttons[1].Label != "Portrait Session" {
		t.Errorf("unexpected label: %s", buttons[1].Label)
	}
}

func TestIsOfferedService_CaseInsensitive(t *testing.T) {
	client := &domain.Client{ServicesOffered: []string{"wedding"}}

	if !isOfferedService(client, "Wedding") {
		t.Error("expected case-insensitive service match")
	}
	if isOfferedService(client, "portrait") {
		t.Error("portrait is not offered by this client")
	}
}

func TestServicesAnswer_JoinsNaturally(t *testing.T) {
	answer := servicesAnswer([]string{"wedding", "elopement", "portrait"})

	want := "I offer weddings, elopements, and portrait sessions. Each service can be customized to fit your specific needs and vision!"
	if answer != want {
		t.Errorf("unexpected answer:\n got: %s\nwant: %s", answer, want)
	}
}

func TestServicesAnswer_SingleService(t *testing.T) {
	answer := servicesAnswer([]string{"wedding"})

	if answer != "I offer weddings. Each service can be customized to fit your specific needs and vision!" {
		t.Errorf("unexpected answer: %s", answer)
	}
}

func TestServicesAnswer_UnknownKeyPassesThrough(t *testing.T) {
	answer := servicesAnswer([]string{"drone coverage"})

	if answer != "I offer drone coverage. Each service can be customized to fit your specific needs and vision!" {
		t.Errorf("unexpected answer: %s", answer)
	}
}

func TestIsCoverageOption(t *testing.T) {
	if !isCoverageOption("Full Day") {
		t.Error("expected 'full day' accepted case-insensitively")
	}
	if isCoverageOption("12 hours") {
		t.Error("unexpected coverage option accepted")
	}
}
