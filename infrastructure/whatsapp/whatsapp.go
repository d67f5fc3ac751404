package whatsapp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	sendURL  = "https://api.whatsapp.com/send"
	shortURL = "https://wa.me/"
)

// indianPhonePattern accepts local business numbers with an optional
// +91/91/0 prefix.
var indianPhonePattern = regexp.MustCompile(`^(\+91|91|0)?[789]\d{9}$`)

// messageTemplates are the canned messages the site offers for prefilled
// chats, keyed by template name.
var messageTemplates = map[string]string{
	"general":      "Hello! I would like to know more about your services.",
	"service":      "Hi! I'm interested in your services. Can you provide more details?",
	"pricing":      "Hello! Could you please share your pricing information?",
	"consultation": "Hi! I'd like to schedule a consultation. When are you available?",
	"partnership":  "Hello! I'm interested in exploring partnership opportunities.",
	"feedback":     "Hi! I have some feedback about your services.",
	"support":      "Hello! I need help with your services. Can you assist me?",
}

// ContactInfo describes the business number and its ready-made links.
type ContactInfo struct {
	Phone          string `json:"phone"`
	FormattedPhone string `json:"formattedPhone"`
	ChatLink       string `json:"chatLink"`
	BusinessLink   string `json:"businessLink"`
	IsValid        bool   `json:"isValid"`
}

// Service generates WhatsApp deep links for the configured business number.
// It is pure string templating; no WhatsApp API calls are made.
type Service struct {
	phoneNumber    string
	defaultMessage string
}

// NewService creates a WhatsApp link service. phoneNumber may carry
// formatting characters; they are stripped.
func NewService(phoneNumber, defaultMessage string) (*Service, error) {
	cleaned := cleanPhone(phoneNumber)
	if strings.TrimPrefix(cleaned, "+") == "" {
		return nil, fmt.Errorf("whatsapp service requires a phone number")
	}
	if defaultMessage == "" {
		defaultMessage = messageTemplates["general"]
	}
	return &Service{phoneNumber: cleaned, defaultMessage: defaultMessage}, nil
}

// ChatLink returns the prefilled chat URL. An empty message falls back to
// the configured default.
func (s *Service) ChatLink(message string) string {
	if message == "" {
		message = s.defaultMessage
	}
	return sendURL + "?phone=" + url.QueryEscape(s.phoneNumber) + "&text=" + url.QueryEscape(message)
}

// TemplateLink returns the chat URL prefilled with a named template. An
// unknown template falls back to the default message.
func (s *Service) TemplateLink(template string) string {
	return s.ChatLink(messageTemplates[template])
}

// BusinessLink returns the short wa.me link without a message.
func (s *Service) BusinessLink() string {
	return shortURL + strings.TrimPrefix(s.phoneNumber, "+")
}

// Templates returns the available message templates.
func (s *Service) Templates() map[string]string {
	out := make(map[string]string, len(messageTemplates))
	for name, message := range messageTemplates {
		out[name] = message
	}
	return out
}

// ContactInfo returns the business number with its links and display form.
func (s *Service) ContactInfo() ContactInfo {
	return ContactInfo{
		Phone:          s.phoneNumber,
		FormattedPhone: FormatPhoneNumber(s.phoneNumber),
		ChatLink:       s.ChatLink(""),
		BusinessLink:   s.BusinessLink(),
		IsValid:        ValidatePhoneNumber(s.phoneNumber),
	}
}

// ValidatePhoneNumber reports whether phone is a plausible Indian mobile
// number after stripping formatting.
func ValidatePhoneNumber(phone string) bool {
	return indianPhonePattern.MatchString(cleanPhone(phone))
}

// FormatPhoneNumber renders a number for display as "+91 XXXXX XXX XX".
// Numbers it does not recognize come back unchanged.
func FormatPhoneNumber(phone string) string {
	cleaned := cleanPhone(phone)

	var national string
	switch {
	case strings.HasPrefix(cleaned, "+91"):
		national = cleaned[3:]
	case strings.HasPrefix(cleaned, "91"):
		national = cleaned[2:]
	case strings.HasPrefix(cleaned, "0"):
		national = cleaned[1:]
	default:
		return phone
	}
	if len(national) != 10 {
		return phone
	}
	return fmt.Sprintf("+91 %s %s %s", national[:5], national[5:8], national[8:])
}

// cleanPhone strips formatting characters, keeping digits and a leading "+".
func cleanPhone(phone string) string {
	var sb strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || r == '+' && i == 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
