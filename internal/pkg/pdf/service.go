// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	StoreName string       `json:"store_name"`
	Order     *order.Order `json:"order"`
}

// GenerateReceipt generates a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := ReceiptData{
		StoreName: s.config.App.Name,
		Order:     o,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"money": func(cents int64) string {
			return fmt.Sprintf("$%.2f", float64(cents)/100)
		},
	}).Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; color: #222; margin: 40px; }
  h1 { font-size: 20px; }
  table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
  th:last-child, td:last-child { text-align: right; }
  .totals { width: 40%; margin-left: auto; }
  .totals td { border: none; padding: 4px 8px; }
  .grand { font-weight: bold; border-top: 2px solid #222; }
</style>
</head>
<body>
  <h1>{{.StoreName}} Receipt</h1>
  <p>
    Order: <strong>{{.Order.OrderNumber}}</strong><br/>
    Date: {{.Order.CreatedAt.Format "January 2, 2006"}}<br/>
    Status: {{.Order.Status}}
  </p>
  <table>
    <tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Product.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{money .Product.Price}}</td>
      <td>{{money .LineTotal}}</td>
    </tr>
    {{end}}
  </table>
  <table class="totals">
    <tr><td>Subtotal</td><td>{{money .Order.Pricing.Subtotal}}</td></tr>
    <tr><td>Shipping</td><td>{{if eq .Order.Pricing.ShippingCost 0}}FREE{{else}}{{money .Order.Pricing.ShippingCost}}{{end}}</td></tr>
    <tr><td>Tax</td><td>{{money .Order.Pricing.TaxAmount}}</td></tr>
    {{if gt .Order.Pricing.DiscountAmount 0}}
    <tr><td>Discount</td><td>-{{money .Order.Pricing.DiscountAmount}}</td></tr>
    {{end}}
    <tr class="grand"><td>Total</td><td>{{money .Order.Pricing.TotalAmount}}</td></tr>
  </table>
  <p>
    Ship to: {{.Order.ShippingAddress.FullName}}<br/>
    {{.Order.ShippingAddress.Street}}, {{.Order.ShippingAddress.City}},
    {{.Order.ShippingAddress.State}} {{.Order.ShippingAddress.ZipCode}},
    {{.Order.ShippingAddress.Country}}
  </p>
</body>
</html>`
