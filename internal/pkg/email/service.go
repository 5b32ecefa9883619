// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
)

// Service sends order confirmation emails over SMTP. When the mailer is
// disabled or unconfigured, sends are silently skipped; this keeps the
// demo checkout flow working with no mail server around.
type Service struct {
	config *config.Config
	log    *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		log:    log,
	}
}

// SendOrderConfirmation renders and sends the confirmation for an order.
func (s *Service) SendOrderConfirmation(_ context.Context, o *order.Order) error {
	if !s.config.Email.Enabled || s.config.Email.SMTPHost == "" {
		s.log.WithField("order_id", o.ID).Debug("mailer disabled, skipping order confirmation")
		return nil
	}

	html, err := renderConfirmation(o)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmation - %s", o.OrderNumber)
	return s.send([]string{o.Email}, subject, html)
}

func (s *Service) send(to []string, subject, htmlContent string) error {
	cfg := s.config.Email

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ", "),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": `text/html; charset="utf-8"`,
	}

	var msg bytes.Buffer
	for key, value := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlContent)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, cfg.FromEmail, to, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func renderConfirmation(o *order.Order) (string, error) {
	tmpl := template.Must(template.New("confirmation").Funcs(template.FuncMap{
		"money": func(cents int64) string {
			return fmt.Sprintf("$%.2f", float64(cents)/100)
		},
	}).Parse(confirmationTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, o); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const confirmationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order!</h2>
  <p>Your order <strong>{{.OrderNumber}}</strong> has been received and is being processed.</p>
  <table width="100%" cellpadding="6" style="border-collapse: collapse;">
    <tr style="background: #f4f4f4;">
      <th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th>
    </tr>
    {{range .Items}}
    <tr>
      <td>{{.Product.Name}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">{{money .LineTotal}}</td>
    </tr>
    {{end}}
  </table>
  <p>
    Subtotal: {{money .Pricing.Subtotal}}<br/>
    Shipping: {{if eq .Pricing.ShippingCost 0}}FREE{{else}}{{money .Pricing.ShippingCost}}{{end}}<br/>
    Tax: {{money .Pricing.TaxAmount}}<br/>
    {{if gt .Pricing.DiscountAmount 0}}Discount: -{{money .Pricing.DiscountAmount}}<br/>{{end}}
    <strong>Total: {{money .Pricing.TotalAmount}}</strong>
  </p>
  <p>Shipping to: {{.ShippingAddress.FullName}}, {{.ShippingAddress.Street}}, {{.ShippingAddress.City}} {{.ShippingAddress.ZipCode}}</p>
</body>
</html>`
