// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCatalogConfirmation(batch *entity.CatalogRequestBatch) error
	SendCatalogAdminNotice(batch *entity.CatalogRequestBatch) error
	SendInquiryNotice(inquiry *entity.Inquiry) error
	SendInquiryAutoReply(inquiry *entity.Inquiry) error
	SendJobApplication(application *entity.JobApplication) error
}

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Options struct {
	SenderEmail  string
	SenderName   string
	AdminEmail   string
	CareersEmail string
	SiteName     string
	LogoPath     string
}

type emailService struct {
	sender Sender
	opts   Options
	logger logger.ILogger
}

func NewEmailService(host string, port int, username, password string, opts Options, log logger.ILogger) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return NewEmailServiceWithSender(d, opts, log)
}

func NewEmailServiceWithSender(sender Sender, opts Options, log logger.ILogger) IEmailService {
	if opts.AdminEmail == "" {
		opts.AdminEmail = opts.SenderEmail
	}
	if opts.CareersEmail == "" {
		opts.CareersEmail = opts.AdminEmail
	}
	return &emailService{
		sender: sender,
		opts:   opts,
		logger: log,
	}
}

func (s *emailService) SendCatalogConfirmation(batch *entity.CatalogRequestBatch) error {
	name := batch.Contact.Name
	if name == "" {
		name = "there"
	}
	body, err := render(catalogConfirmationTmpl, map[string]interface{}{
		"Name":  name,
		"Items": batch.Items,
		"Site":  s.opts.SiteName,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s Product Catalogs", s.opts.SiteName)
	return s.send("catalog_confirmation", batch.Contact.Email, subject, body)
}

func (s *emailService) SendCatalogAdminNotice(batch *entity.CatalogRequestBatch) error {
	body, err := render(catalogAdminTmpl, map[string]interface{}{
		"RequestId": batch.RequestId.String(),
		"Contact":   batch.Contact,
		"Items":     batch.Items,
		"Count":     len(batch.Items),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New Catalog Request - %s", batch.Contact.Email)
	return s.send("catalog_admin_notice", s.opts.AdminEmail, subject, body)
}

func (s *emailService) SendInquiryNotice(inquiry *entity.Inquiry) error {
	body, err := render(inquiryAdminTmpl, map[string]interface{}{
		"Inquiry": inquiry,
		"Company": deref(inquiry.Company, "N/A"),
		"Message": deref(inquiry.Message, "N/A"),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("[%s] New Website Inquiry - %s", strings.ToUpper(inquiry.Website), inquiry.FullName)
	return s.send("inquiry_notice", s.opts.AdminEmail, subject, body)
}

func (s *emailService) SendInquiryAutoReply(inquiry *entity.Inquiry) error {
	body, err := render(inquiryReplyTmpl, map[string]interface{}{
		"Name": inquiry.FullName,
		"Site": s.opts.SiteName,
	})
	if err != nil {
		return err
	}
	return s.send("inquiry_auto_reply", inquiry.Email, "Thank you for contacting us", body)
}

func (s *emailService) SendJobApplication(application *entity.JobApplication) error {
	body, err := render(jobApplicationTmpl, map[string]interface{}{
		"App":      application,
		"LinkedIn": orDefault(application.LinkedIn, "Not provided"),
		"Phone":    orDefault(application.Phone, "Not provided"),
		"Lines":    strings.Split(application.Message, "\n"),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("NEW JOB APPLICATION: %s - %s", application.JobTitle, application.Name)
	return s.send("job_application", s.opts.CareersEmail, subject, body)
}

func (s *emailService) send(kind, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.opts.SenderEmail, s.opts.SenderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)

	if s.opts.LogoPath != "" {
		if _, err := os.Stat(s.opts.LogoPath); err == nil {
			m.Embed(s.opts.LogoPath, gomail.Rename(logoCid))
			body = strings.Replace(body, "<!--logo-->", `<img src="cid:`+logoCid+`" width="150" alt="" />`, 1)
		}
	}
	m.SetBody("text/html", body)

	if err := s.sender.DialAndSend(m); err != nil {
		s.logger.Error("Mailer", "Failed to send email", map[string]interface{}{
			"kind":  kind,
			"to":    to,
			"error": err.Error(),
		})
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	s.logger.Info("Mailer", "Email sent", map[string]interface{}{"kind": kind, "to": to})
	return nil
}

const logoCid = "logo.png"

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
