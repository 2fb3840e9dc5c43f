package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/observability/telemetry"
	"github.com/techmayne/photobot/internal/ports"
)

// Engine drives the scripted dialog. Given a tenant snapshot, the current
// session and the latest input it produces the next TurnResult and
// persists the post-turn session exactly once. Deterministic apart from
// the embedded lead-capture side effect.
type Engine struct {
	convRepo ports.ConversationRepository
	faq      ports.FAQService
	leads    ports.LeadService
	log      *zap.Logger
}

func NewEngine(convRepo ports.ConversationRepository, faq ports.FAQService, leads ports.LeadService, log *zap.Logger) *Engine {
	return &Engine{
		convRepo: convRepo,
		faq:      faq,
		leads:    leads,
		log:      log,
	}
}

// Turn processes one visitor input against the session's current state.
// The tenant config is treated as an immutable snapshot.
func (e *Engine) Turn(ctx context.Context, client *domain.Client, conv *domain.Conversation, input string) (*domain.TurnResult, error) {
	data := conv.CollectedData
	if data == nil {
		data = domain.CollectedData{}
	}

	// "I'm all set!" closes the conversation from any state. Checked
	// before the per-state dispatch, persists and returns early.
	if input == domain.ActionComplete {
		res := e.closingResult(client, data)
		if err := e.persist(ctx, conv, res.NextState, data); err != nil {
			return nil, err
		}
		telemetry.TurnsProcessed.Inc()
		return res, nil
	}

	var (
		res *domain.TurnResult
		err error
	)

	switch conv.CurrentState {
	case domain.StateWelcome:
		res = e.welcome(client)
	case domain.StateMainMenu:
		res = e.mainMenu(client, input)
	case domain.StateCollectEventType:
		res = e.collectEventType(client, data, input)
	case domain.StateCollectOtherEventType:
		res = e.collectOtherEventType(data, input)
	case domain.StateCollectDate:
		res = e.collectDate(data, input)
	case domain.StateCollectLocation:
		res = e.collectLocation(data, input)
	case domain.StateCollectCoverage:
		res = e.collectCoverage(data, input)
	case domain.StateConfirmContactReuse:
		res, err = e.confirmContactReuse(ctx, client, conv, data, input)
	case domain.StateCollectName:
		res = e.collectName(data, input)
	case domain.StateCollectEmail:
		res = e.collectEmail(data, input)
	case domain.StateCollectPhone:
		res, err = e.collectPhone(ctx, client, conv, data, input)
	case domain.StateFAQQuestion:
		res, err = e.faqQuestion(ctx, client, conv, data, input)
	case domain.StateCompletion:
		res = e.completion(client, input)
	case domain.StateClosed:
		res = e.reopened(client)
	default:
		// Corrupted or unknown persisted state: recover to the menu.
		e.log.Warn("Unknown conversation state, resetting",
			zap.String("conversation_id", conv.ID),
			zap.String("state", string(conv.CurrentState)),
		)
		res = &domain.TurnResult{
			Message:   "I'm not sure how to help with that. Let me start over.",
			Buttons:   mainMenuButtons(),
			NextState: domain.StateMainMenu,
		}
	}
	if err != nil {
		return nil, err
	}

	if err := e.persist(ctx, conv, res.NextState, data); err != nil {
		return nil, err
	}
	telemetry.TurnsProcessed.Inc()
	return res, nil
}

func (e *Engine) persist(ctx context.Context, conv *domain.Conversation, next domain.State, data domain.CollectedData) error {
	now := time.Now()
	if err := e.convRepo.UpdateTurn(ctx, conv.ID, next, data, now); err != nil {
		return fmt.Errorf("failed to persist conversation turn: %w", err)
	}
	conv.CurrentState = next
	conv.CollectedData = data
	conv.LastMessageAt = now
	return nil
}

func (e *Engine) closingResult(client *domain.Client, data domain.CollectedData) *domain.TurnResult {
	if data.HasContactInfo() {
		visitorName := ""
		if name := data[domain.FieldName]; name != "" {
			visitorName = " " + name
		}
		return &domain.TurnResult{
			Message: fmt.Sprintf("Thanks so much for reaching out,%s! %s is excited to potentially work with you. Keep an eye on your inbox - you'll hear back soon!\n\nHave a wonderful day! 📸✨",
				visitorName, client.BusinessName),
			NextState: domain.StateClosed,
		}
	}
	return &domain.TurnResult{
		Message: fmt.Sprintf("Glad I could help! If you'd like to check availability or get in touch with %s, feel free to come back anytime.\n\nHave a wonderful day! 📸✨",
			client.BusinessName),
		NextState: domain.StateClosed,
	}
}

func (e *Engine) welcome(client *domain.Client) *domain.TurnResult {
	return &domain.TurnResult{
		Message:   fmt.Sprintf("Hi! I'm here to help you learn more about %s. What would you like to know?", client.BusinessName),
		Buttons:   mainMenuButtons(),
		NextState: domain.StateMainMenu,
	}
}

func (e *Engine) mainMenu(client *domain.Client, input string) *domain.TurnResult {
	switch input {
	case domain.ActionCheckAvailability:
		return &domain.TurnResult{
			Message:   "Great! Let me gather some details to check availability. What type of event are you planning?",
			Buttons:   eventTypeButtons(client),
			NextState: domain.StateCollectEventType,
		}
	case domain.ActionViewPackages:
		return e.packagesSummary(client, domain.StateMainMenu)
	case domain.ActionAskQuestion:
		return &domain.TurnResult{
			Message:   "I'd be happy to answer your question! What would you like to know?",
			InputType: domain.InputTypeText,
			NextState: domain.StateFAQQuestion,
		}
	default:
		// Typed text instead of a button click: re-show the menu.
		return &domain.TurnResult{
			Message:   "Please choose one of the options below by clicking a button. How can I help you today?",
			Buttons:   mainMenuButtons(),
			NextState: domain.StateMainMenu,
		}
	}
}

func (e *Engine) collectEventType(client *domain.Client, data domain.CollectedData, input string) *domain.TurnResult {
	if !isOfferedService(client, input) {
		return &domain.TurnResult{
			Message:   "Please select your event type by clicking one of the buttons below.",
			Buttons:   eventTypeButtons(client),
			NextState: domain.StateCollectEventType,
		}
	}

	if strings.EqualFold(input, "other") {
		return &domain.TurnResult{
			Message:     "What type of event is this?",
			InputType:   domain.InputTypeText,
			Placeholder: "e.g., Corporate headshots, Birthday party",
			NextState:   domain.StateCollectOtherEventType,
		}
	}

	data[domain.FieldEventType] = input
	return &domain.TurnResult{
		Message:     fmt.Sprintf("Perfect! When is your %s?", eventDisplayName(input)),
		InputType:   domain.InputTypeText,
		Placeholder: "e.g., June 15, 2026",
		NextState:   domain.StateCollectDate,
	}
}

func (e *Engine) collectOtherEventType(data domain.CollectedData, input string) *domain.TurnResult {
	data[domain.FieldEventType] = input
	return &domain.TurnResult{
		Message:     fmt.Sprintf("Perfect! When is your %s?", strings.ToLower(input)),
		InputType:   domain.InputTypeText,
		Placeholder: "e.g., June 15, 2026",
		NextState:   domain.StateCollectDate,
	}
}

func (e *Engine) collectDate(data domain.CollectedData, input string) *domain.TurnResult {
	data[domain.FieldEventDate] = input
	return &domain.TurnResult{
		Message:     "Where will your event take place?",
		InputType:   domain.InputTypeText,
		Placeholder: "e.g., San Francisco, CA",
		NextState:   domain.StateCollectLocation,
	}
}

func (e *Engine) collectLocation(data domain.CollectedData, input string) *domain.TurnResult {
	data[domain.FieldLocation] = input
	return &domain.TurnResult{
		Message:   "How many hours of coverage are you looking for?",
		Buttons:   coverageButtons,
		NextState: domain.StateCollectCoverage,
	}
}

func (e *Engine) collectCoverage(data domain.CollectedData, input string) *domain.TurnResult {
	if !isCoverageOption(input) {
		return &domain.TurnResult{
			Message:   "Please select a coverage option by clicking one of the buttons below.",
			Buttons:   coverageButtons,
			NextState: domain.StateCollectCoverage,
		}
	}

	data[domain.FieldCoverageRange] = input

	// Repeat availability check: contact info survives from the earlier
	// capture, so offer to reuse it instead of re-asking.
	if data.HasContactInfo() {
		return &domain.TurnResult{
			Message: fmt.Sprintf("I can use your previous contact info (%s, %s) or you can provide different details. Would you like to use the same contact information?",
				data[domain.FieldName], data[domain.FieldEmail]),
			Buttons:   contactReuseButtons(),
			NextState: domain.StateConfirmContactReuse,
		}
	}

	return &domain.TurnResult{
		Message:   "Excellent! Let me get your contact info so the photographer can reach out with availability and pricing details.\n\nWhat's your name?",
		InputType: domain.InputTypeText,
		NextState: domain.StateCollectName,
	}
}

func contactReuseButtons() []domain.Button {
	return []domain.Button{
		{Label: "Use Previous Info", Action: domain.ActionUsePreviousContact},
		{Label: "Enter New Info", Action: domain.ActionEnterNewContact},
	}
}

func (e *Engine) confirmContactReuse(ctx context.Context, client *domain.Client, conv *domain.Conversation, data domain.CollectedData, input string) (*domain.TurnResult, error) {
	switch input {
	case domain.ActionUsePreviousContact:
		if _, err := e.leads.Capture(ctx, client, conv.ID, data); err != nil {
			return nil, err
		}
		return &domain.TurnResult{
			Message: fmt.Sprintf("Perfect! I've sent your inquiry to %s. They'll reach out within 24 hours with availability and pricing.%s\n\nIs there anything else I can help with?",
				client.BusinessName, bookingLinkSuffix(client)),
			Buttons:   wrapUpButtons(),
			NextState: domain.StateCompletion,
		}, nil
	case domain.ActionEnterNewContact:
		data.ClearContactInfo()
		return &domain.TurnResult{
			Message:   "No problem! What's the name for this inquiry?",
			InputType: domain.InputTypeText,
			NextState: domain.StateCollectName,
		}, nil
	default:
		return &domain.TurnResult{
			Message:   "Please choose one of the options below.",
			Buttons:   contactReuseButtons(),
			NextState: domain.StateConfirmContactReuse,
		}, nil
	}
}

func (e *Engine) collectName(data domain.CollectedData, input string) *domain.TurnResult {
	data[domain.FieldName] = input
	return &domain.TurnResult{
		Message:   fmt.Sprintf("Thanks, %s! What's the best email to reach you?", input),
		InputType: domain.InputTypeEmail,
		NextState: domain.StateCollectEmail,
	}
}

func (e *Engine) collectEmail(data domain.CollectedData, input string) *domain.TurnResult {
	data[domain.FieldEmail] = input
	return &domain.TurnResult{
		Message:     "And your phone number? (You can skip this if you prefer)",
		Buttons:     []domain.Button{{Label: "Skip", Action: domain.ActionSkipPhone}},
		InputType:   domain.InputTypeTel,
		Placeholder: "(555) 123-4567",
		NextState:   domain.StateCollectPhone,
	}
}

func (e *Engine) collectPhone(ctx context.Context, client *domain.Client, conv *domain.Conversation, data domain.CollectedData, input string) (*domain.TurnResult, error) {
	if input != domain.ActionSkipPhone {
		data[domain.FieldPhone] = input
	}

	if _, err := e.leads.Capture(ctx, client, conv.ID, data); err != nil {
		return nil, err
	}

	return &domain.TurnResult{
		Message: fmt.Sprintf("Perfect! I've sent your information to %s. They'll reach out within 24 hours to discuss availability and next steps.%s\n\nIs there anything else I can help with?",
			client.BusinessName, bookingLinkSuffix(client)),
		Buttons:   wrapUpButtons(),
		NextState: domain.StateCompletion,
	}, nil
}

func bookingLinkSuffix(client *domain.Client) string {
	if client.BookingLink == "" {
		return ""
	}
	return fmt.Sprintf("\n\nYou can also schedule a call directly here: %s", client.BookingLink)
}

func (e *Engine) faqQuestion(ctx context.Context, client *domain.Client, conv *domain.Conversation, data domain.CollectedData, input string) (*domain.TurnResult, error) {
	match := e.faq.Answer(ctx, client.ID, input)

	if match.Found {
		answer := match.Answer
		// The services FAQ is rebuilt from the tenant's configured list.
		if match.Question == servicesFAQQuestion && len(client.ServicesOffered) > 0 {
			if dynamic := servicesAnswer(client.ServicesOffered); dynamic != "" {
				answer = dynamic
			}
		}
		return &domain.TurnResult{
			Message: answer + "\n\nDid that answer your question?",
			Buttons: []domain.Button{
				{Label: "Yes, thanks!", Action: domain.ActionFAQAnswered},
				{Label: "Check Availability", Action: domain.ActionCheckAvailability},
				{Label: "Ask Another Question", Action: domain.ActionAskQuestion},
			},
			NextState: domain.StateCompletion,
		}, nil
	}

	// No answer: the question itself becomes lead context so it always
	// funnels into capture.
	data[domain.FieldAdditionalNotes] = "Question: " + input

	if data.HasContactInfo() {
		if _, err := e.leads.Capture(ctx, client, conv.ID, data); err != nil {
			return nil, err
		}
		return &domain.TurnResult{
			Message: fmt.Sprintf("That's a great question! I've forwarded it to %s and they'll get back to you with a detailed answer.\n\nAnything else I can help with?",
				client.BusinessName),
			Buttons:   wrapUpButtons(),
			NextState: domain.StateCompletion,
		}, nil
	}

	return &domain.TurnResult{
		Message:   "That's a great question! I want to make sure you get the most accurate answer. Let me collect your info so the photographer can respond directly.\n\nWhat's your name?",
		InputType: domain.InputTypeText,
		NextState: domain.StateCollectName,
	}, nil
}

func (e *Engine) completion(client *domain.Client, input string) *domain.TurnResult {
	switch input {
	case domain.ActionAskQuestion:
		return &domain.TurnResult{
			Message:   "Sure! What would you like to know?",
			InputType: domain.InputTypeText,
			NextState: domain.StateFAQQuestion,
		}
	case domain.ActionFAQAnswered:
		return &domain.TurnResult{
			Message:   "Great! Is there anything else I can help you with?",
			Buttons:   completionMenuButtons(),
			NextState: domain.StateCompletion,
		}
	case domain.ActionCheckAvailability:
		// Contact info already lives in the bag, so re-entering the
		// availability flow never re-asks for it.
		return &domain.TurnResult{
			Message:   "I can help you check another date! What type of event are you interested in?",
			Buttons:   eventTypeButtons(client),
			NextState: domain.StateCollectEventType,
		}
	case domain.ActionViewPackages:
		return e.packagesSummary(client, domain.StateCompletion)
	default:
		return &domain.TurnResult{
			Message:   "Please choose one of the options below. Is there anything else I can help with?",
			Buttons:   completionMenuButtons(),
			NextState: domain.StateCompletion,
		}
	}
}

// reopened restarts a closed session: the row is reused, never deleted.
func (e *Engine) reopened(client *domain.Client) *domain.TurnResult {
	return &domain.TurnResult{
		Message:   "Welcome back! How can I help you today?",
		Buttons:   mainMenuButtons(),
		NextState: domain.StateMainMenu,
	}
}

// packagesSummary composes the pricing overview without changing state.
func (e *Engine) packagesSummary(client *domain.Client, current domain.State) *domain.TurnResult {
	var b strings.Builder
	b.WriteString("Here's an overview of what's offered:\n\n")

	if client.StartingPrice != "" {
		fmt.Fprintf(&b, "Packages starting at %s\n", client.StartingPrice)
	}
	fmt.Fprintf(&b, "Gallery delivery: %s\n", client.GalleryTimeline)

	serviceArea := client.ServiceArea
	if serviceArea == "" {
		serviceArea = "Available on request"
	}
	fmt.Fprintf(&b, "Service area: %s\n\n", serviceArea)
	b.WriteString("For detailed pricing and package information, I'd recommend connecting directly with the photographer.")

	return &domain.TurnResult{
		Message: b.String(),
		Buttons: []domain.Button{
			{Label: "Check My Date", Action: domain.ActionCheckAvailability},
			{Label: "Ask a Question", Action: domain.ActionAskQuestion},
		},
		NextState: current,
	}
}
