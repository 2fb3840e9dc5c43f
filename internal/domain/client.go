package domain

import (
	"time"
)

// Client is a tenant: a photography business with its own widget token,
// chat configuration and FAQ set.
type Client struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	ClientToken       string    `json:"client_token" gorm:"uniqueIndex"`
	BusinessName      string    `json:"business_name"`
	ChatbotName       string    `json:"chatbot_name" gorm:"default:PhotoBot AI"`
	WebsiteURL        string    `json:"website_url"`
	BookingLink       string    `json:"booking_link,omitempty"`
	NotificationEmail string    `json:"notification_email"`
	PhoneNumber       string    `json:"phone_number"`
	ServiceArea       string    `json:"service_area,omitempty"`
	StartingPrice     string    `json:"starting_price,omitempty"`
	GalleryTimeline   string    `json:"gallery_timeline" gorm:"default:4-6 weeks"`
	ServicesOffered   []string  `json:"services_offered" gorm:"serializer:json"`
	AccentColor       string    `json:"accent_color" gorm:"default:#6366f1"`
	LogoURL           string    `json:"logo_url,omitempty"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WidgetConfig is the public slice of a client record served to the
// embedded widget. Never expose the token or contact details here.
type WidgetConfig struct {
	BusinessName string `json:"business_name"`
	ChatbotName  string `json:"chatbot_name"`
	AccentColor  string `json:"accent_color"`
	LogoURL      string `json:"logo_url,omitempty"`
}

func (c *Client) WidgetConfig() WidgetConfig {
	return WidgetConfig{
		BusinessName: c.BusinessName,
		ChatbotName:  c.ChatbotName,
		AccentColor:  c.AccentColor,
		LogoURL:      c.LogoURL,
	}
}
