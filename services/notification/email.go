package notification

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"memoryaid/config"
	"memoryaid/models"
)

// SMTPNotificationService sends caregiver alerts by email.
type SMTPNotificationService struct {
	dialer *gomail.Dialer
	sender string
}

func NewSMTPNotificationService() *SMTPNotificationService {
	cfg := config.AppConfig
	return &SMTPNotificationService{
		dialer: gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPass),
		sender: cfg.SenderEmail,
	}
}

func (s *SMTPNotificationService) SendAlertEmail(ctx context.Context, caregiver models.Caregiver, alert models.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", caregiver.Email)
	m.SetHeader("Subject", fmt.Sprintf("ALERT: %s - Memory Aid Emergency", strings.ToUpper(string(alert.Severity))))
	m.SetBody("text/plain", alertBody(caregiver, alert))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send alert email to %s: %w", caregiver.Email, err)
	}
	return nil
}

func alertBody(caregiver models.Caregiver, alert models.Alert) string {
	patient := caregiver.PatientName
	if patient == "" {
		patient = "Patient"
	}

	var b strings.Builder
	b.WriteString("Emergency Alert from Memory Aid System\n\n")
	fmt.Fprintf(&b, "Patient: %s\n", patient)
	fmt.Fprintf(&b, "Severity: %s\n", strings.ToUpper(string(alert.Severity)))
	fmt.Fprintf(&b, "Time: %s\n", alert.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Context: %s\n", alert.Context)
	if alert.Transcript != "" {
		fmt.Fprintf(&b, "\nPatient said: %s\n", alert.Transcript)
	}
	b.WriteString("\nPlease check on the patient immediately.\n\n---\nMemory Aid System\n")
	return b.String()
}
