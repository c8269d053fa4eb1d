package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendContactNotification emails the operator about a new contact form
// submission via the Resend API. It is a no-op when RESEND_API_KEY or
// CONTACT_NOTIFY_EMAIL is not configured.
func SendContactNotification(name, email, subject, message string) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	recipient := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if apiKey == "" || recipient == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "Portfolio Site <[email protected]>"
	}

	if subject == "" {
		subject = "(no subject)"
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	payload := ResendEmailRequest{
		From:    from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("New contact message: %s", subject),
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp ResendErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	log.Info().Str("recipient", recipient).Msg("Contact notification sent")
	return nil
}
