package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"pet-clinic-api/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template data per transactional mail type

type AppointmentMailData struct {
	OwnerName  string
	PetName    string
	DoctorName string
	Date       string
	Time       string
	Type       string
	ClinicName string
}

type InvoiceMailData struct {
	OwnerName     string
	InvoiceNumber string
	TotalAmount   string
	DueDate       string
	ClinicName    string
}

type WelcomeMailData struct {
	Name       string
	Email      string
	ClinicName string
}

type PasswordResetMailData struct {
	Name       string
	ResetURL   string
	ClinicName string
}

type ContactMailData struct {
	UserName    string
	UserEmail   string
	Subject     string
	UserMessage string
	ClinicName  string
}

type TestMailData struct {
	Message    string
	Timestamp  string
	ClinicName string
}

// Mailer sends template-based transactional email over SMTP. Sends are
// fire-and-forget from the caller's perspective: an error is returned, logged
// here, and never carries provider detail upward.
type Mailer interface {
	SendTest(to string, data TestMailData) error
	SendAppointmentConfirmation(to, toName string, data AppointmentMailData) error
	SendAppointmentReminder(to, toName string, data AppointmentMailData) error
	SendInvoiceAlert(to, toName string, data InvoiceMailData) error
	SendWelcome(to, toName string, data WelcomeMailData) error
	SendPasswordReset(to, toName string, data PasswordResetMailData) error
	SendUserToAdmin(data ContactMailData) error
}

type smtpMailer struct {
	cfg       config.MailConfig
	dialer    *gomail.Dialer
	log       *logrus.Logger
	templates *template.Template
}

func NewMailer(cfg config.MailConfig, log *logrus.Logger) (Mailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &smtpMailer{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		log:       log,
		templates: templates,
	}, nil
}

func (m *smtpMailer) SendTest(to string, data TestMailData) error {
	return m.send(to, "", "Test Email - "+data.ClinicName, "test.html", data, "")
}

func (m *smtpMailer) SendAppointmentConfirmation(to, toName string, data AppointmentMailData) error {
	return m.send(to, toName, "Appointment Confirmation - "+data.ClinicName, "appointment_confirmation.html", data, "")
}

func (m *smtpMailer) SendAppointmentReminder(to, toName string, data AppointmentMailData) error {
	return m.send(to, toName, "Appointment Reminder - "+data.ClinicName, "appointment_reminder.html", data, "")
}

func (m *smtpMailer) SendInvoiceAlert(to, toName string, data InvoiceMailData) error {
	subject := fmt.Sprintf("Invoice Alert #%s - %s", data.InvoiceNumber, data.ClinicName)
	return m.send(to, toName, subject, "invoice_alert.html", data, "")
}

func (m *smtpMailer) SendWelcome(to, toName string, data WelcomeMailData) error {
	return m.send(to, toName, "Welcome to "+data.ClinicName, "welcome.html", data, "")
}

func (m *smtpMailer) SendPasswordReset(to, toName string, data PasswordResetMailData) error {
	return m.send(to, toName, "Password Reset Request - "+data.ClinicName, "password_reset.html", data, "")
}

func (m *smtpMailer) SendUserToAdmin(data ContactMailData) error {
	subject := "User Contact: " + data.Subject
	return m.send(m.cfg.AdminInbox, "", subject, "user_to_admin.html", data, data.UserEmail)
}

func (m *smtpMailer) send(to, toName, subject, templateName string, data interface{}, replyTo string) error {
	body, err := RenderMailTemplate(m.templates, templateName, data)
	if err != nil {
		m.log.Errorf("Failed to render mail template %s: %+v", templateName, err)
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	if toName != "" {
		msg.SetAddressHeader("To", to, toName)
	} else {
		msg.SetHeader("To", to)
	}
	msg.SetHeader("Subject", subject)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Errorf("Failed to send %s mail to %s: %+v", templateName, to, err)
		return err
	}

	m.log.Infof("Sent %s mail to %s", templateName, to)
	return nil
}

// RenderMailTemplate executes a named template against data
func RenderMailTemplate(templates *template.Template, name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseMailTemplates exposes the embedded template set, used by tests
func ParseMailTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
