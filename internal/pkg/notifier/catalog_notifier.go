package notifier

import (
	"context"
	"fmt"
	"strings"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/pkg/mailer"

	"github.com/slack-go/slack"
)

type ICatalogNotifier interface {
	NotifyCatalogRequest(ctx context.Context, batch *entity.CatalogRequestBatch) error
}

// SlackWebhook posts a short summary to an incoming-webhook URL.
type SlackWebhook struct {
	url string
}

func NewSlackWebhook(url string) *SlackWebhook {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return &SlackWebhook{url: url}
}

func (w *SlackWebhook) Post(ctx context.Context, batch *entity.CatalogRequestBatch) error {
	header := fmt.Sprintf("*New catalog request* from %s <%s>", batch.Contact.Name, batch.Contact.Email)
	if batch.Contact.Company != "" {
		header += " (" + batch.Contact.Company + ")"
	}

	lines := make([]string, 0, len(batch.Items))
	for _, it := range batch.Items {
		line := fmt.Sprintf("• %s / %s / %s", it.SolutionTitle, it.SeriesName, it.ProductName)
		if !it.HasDocument() {
			line += " _(no datasheet)_"
		}
		lines = append(lines, line)
	}

	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("New catalog request from %s (%d products)", batch.Contact.Email, len(batch.Items)),
		Blocks: &slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, header, false, false), nil, nil),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false), nil, nil),
			slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, "Request "+batch.RequestId.String(), false, false)),
		}},
	}
	return slack.PostWebhookContext(ctx, w.url, msg)
}

type catalogNotifier struct {
	mail   mailer.IEmailService
	slack  *SlackWebhook
	logger logger.ILogger
}

// NewCatalogNotifier sends the visitor confirmation then the admin notice.
// hook may be nil.
func NewCatalogNotifier(mail mailer.IEmailService, hook *SlackWebhook, log logger.ILogger) ICatalogNotifier {
	return &catalogNotifier{
		mail:   mail,
		slack:  hook,
		logger: log,
	}
}

func (n *catalogNotifier) NotifyCatalogRequest(ctx context.Context, batch *entity.CatalogRequestBatch) error {
	if err := n.mail.SendCatalogConfirmation(batch); err != nil {
		return fmt.Errorf("visitor confirmation: %w", err)
	}
	if err := n.mail.SendCatalogAdminNotice(batch); err != nil {
		return fmt.Errorf("admin notice: %w", err)
	}

	if n.slack != nil {
		if err := n.slack.Post(ctx, batch); err != nil {
			n.logger.Warn("Notifier", "Slack webhook failed", map[string]interface{}{
				"request_id": batch.RequestId.String(),
				"error":      err.Error(),
			})
		}
	}
	return nil
}
