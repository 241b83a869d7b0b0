package models

type EmailNotificationRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
	HTMLContent string `json:"html_content,omitempty"`
	Recipient   string `json:"recipient" validate:"required,email"`
	Name        string `json:"name,omitempty"`
}
