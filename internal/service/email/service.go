package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"campus-booking/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error
	SendBookingDecisionEmail(ctx context.Context, toEmail, firstName, eventName, facilityName, date string, approved bool, notes *string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2>Welcome, {{.Name}}!</h2>
<p>Your account is ready. You can now browse facilities and submit booking requests.</p>
<p><a href="http://{{.Domain}}/login">Sign in</a></p>`))

var decisionTmpl = template.Must(template.New("decision").Parse(`
<h2 style="color:{{.Color}}">Booking {{.Status}}</h2>
<p>Hi {{.Name}},</p>
<p>Your booking <strong>{{.EventName}}</strong> for <strong>{{.FacilityName}}</strong> on {{.Date}} has been {{.StatusLower}}.</p>
{{if .Notes}}<p>Reviewer notes: {{.Notes}}</p>{{end}}
<p><a href="http://{{.Domain}}/bookings">View your bookings</a></p>`))

func (s *service) sendEmail(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Campus Booking <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error {
	data := struct {
		Name   string
		Domain string
	}{
		Name:   firstName,
		Domain: s.config.Domain,
	}
	return s.sendEmail(toEmail, "Welcome to Campus Booking", welcomeTmpl, data)
}

func (s *service) SendBookingDecisionEmail(ctx context.Context, toEmail, firstName, eventName, facilityName, date string, approved bool, notes *string) error {
	status := "Approved"
	statusLower := "approved"
	color := "#10b981"
	if !approved {
		status = "Rejected"
		statusLower = "rejected"
		color = "#ef4444"
	}

	var noteText string
	if notes != nil {
		noteText = *notes
	}

	data := struct {
		Name         string
		EventName    string
		FacilityName string
		Date         string
		Status       string
		StatusLower  string
		Color        string
		Notes        string
		Domain       string
	}{
		Name:         firstName,
		EventName:    eventName,
		FacilityName: facilityName,
		Date:         date,
		Status:       status,
		StatusLower:  statusLower,
		Color:        color,
		Notes:        noteText,
		Domain:       s.config.Domain,
	}
	return s.sendEmail(toEmail, fmt.Sprintf("Booking %s - Campus Booking", status), decisionTmpl, data)
}
