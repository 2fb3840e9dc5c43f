package domain

// Action tokens shared between the engine and the widget client. A quick
// reply click sends its token as if the visitor had typed it.
const (
	ActionCheckAvailability  = "check_availability"
	ActionViewPackages       = "view_packages"
	ActionAskQuestion        = "ask_question"
	ActionComplete           = "complete"
	ActionFAQAnswered        = "faq_answered"
	ActionUsePreviousContact = "use_previous_contact"
	ActionEnterNewContact    = "enter_new_contact"
	ActionSkipPhone          = "skip_phone"
)

// StartSentinel opens a conversation. It is never persisted as a visitor
// message and always maps to the welcome state.
const StartSentinel = "__START__"

// Input affordance hints for the widget's text field.
const (
	InputTypeText  = "text"
	InputTypeEmail = "email"
	InputTypeTel   = "tel"
)

// DefaultServices is the fallback service list used when a tenant has not
// configured any. Referenced by the engine for event-type buttons,
// validation and the dynamic services FAQ answer.
var DefaultServices = []string{
	"wedding", "engagement", "elopement", "portrait",
	"corporate", "family", "maternity", "other",
}

// Button is a quick reply: a visible label and the action token its click
// submits.
type Button struct {
	Label  string `json:"text"`
	Action string `json:"action"`
}

// TurnResult is the engine's sole output contract: what the bot says,
// which affordances the widget renders, and the state the session moves
// to. Buttons and a free-text placeholder may co-occur (e.g. the phone
// prompt with its Skip button).
type TurnResult struct {
	Message     string   `json:"message"`
	Buttons     []Button `json:"buttons,omitempty"`
	InputType   string   `json:"inputType,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	NextState   State    `json:"-"`
}

// Meta packages the render hints for transcript storage.
func (t *TurnResult) Meta() *MessageMeta {
	if len(t.Buttons) == 0 && t.InputType == "" && t.Placeholder == "" {
		return nil
	}
	return &MessageMeta{
		Buttons:     t.Buttons,
		InputType:   t.InputType,
		Placeholder: t.Placeholder,
	}
}
