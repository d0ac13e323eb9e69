// Package pdf renders a quotation document into the downloadable PDF the
// client receives. Layout is fixed: every section is always present and
// empty inputs degrade to placeholder sentences instead of dropping sections.
package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alavista-lab/cotizador-api/internal/domain/catalog"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/pricing"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 20.0

	titleSize    = 16.0
	subtitleSize = 14.0
	bodySize     = 12.0
	tableSize    = 10.0

	lineHeight   = 6.0
	rowHeight    = 12.0
	headerHeight = 15.0
)

// Renderer produces quotation PDFs. The zero value is not usable, construct
// with NewRenderer.
type Renderer struct {
	now      func() time.Time
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock fixes the date stamp, making output reproducible.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithoutCompression disables stream compression so text stays inspectable
// in the raw output.
func WithoutCompression() Option {
	return func(r *Renderer) { r.compress = false }
}

// NewRenderer creates a quotation PDF renderer
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Now returns the renderer's current time. Callers that derive the download
// name from it get the same date the letterhead shows.
func (r *Renderer) Now() time.Time {
	return r.now()
}

// SpanishDate formats t as "2 de enero de 2006".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FileName builds the download name for a rendered quotation.
func FileName(companyName string, t time.Time) string {
	name := strings.TrimSpace(companyName)
	if name == "" {
		name = "Proyecto"
	}
	return fmt.Sprintf("Cotizacion_%s_%s.pdf", name, t.Format("2006-01-02"))
}

var markdownMarkers = regexp.MustCompile(`\*{1,2}|_{2}|^#{1,6}\s*`)

// Sanitize strips markdown emphasis and heading markers from externally
// supplied text. The renderer only lays out plain text.
func Sanitize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = markdownMarkers.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string

	width  float64
	height float64
	y      float64
}

func (p *page) contentWidth() float64 {
	return p.width - 2*pageMargin
}

func (p *page) newPage() {
	p.pdf.AddPage()
	p.y = pageMargin
}

// ensureSpace starts a new page when the next block does not fit. Titles call
// it with their body's first line included so they are never orphaned.
func (p *page) ensureSpace(h float64) {
	if p.y+h > p.height-pageMargin {
		p.newPage()
	}
}

func (p *page) text(x, y float64, s string) {
	p.pdf.Text(x, y, p.tr(s))
}

// clip translates s and truncates it to a single line of width w at the
// current font. Truncated text ends in an ellipsis.
func (p *page) clip(s string, w float64) string {
	t := p.tr(s)
	lines := p.pdf.SplitText(t, w)
	if len(lines) <= 1 {
		return t
	}
	return strings.TrimRight(lines[0], " ") + "..."
}

func (p *page) wrapped(s string, size float64, indent float64) {
	p.pdf.SetFont("Helvetica", "", size)
	width := p.contentWidth() - 2*indent
	lines := p.pdf.SplitText(p.tr(s), width)
	for _, line := range lines {
		if p.y+lineHeight > p.height-pageMargin {
			p.newPage()
		}
		p.pdf.Text(pageMargin+indent, p.y, line)
		p.y += lineHeight
	}
}

func (p *page) title(s string) {
	p.ensureSpace(10 + lineHeight)
	p.pdf.SetFont("Helvetica", "B", titleSize)
	p.text(pageMargin, p.y, s)
	p.y += 10
	p.pdf.SetFont("Helvetica", "", bodySize)
}

func (p *page) subtitle(s string) {
	p.ensureSpace(8 + lineHeight)
	p.pdf.SetFont("Helvetica", "B", subtitleSize)
	p.text(pageMargin, p.y, s)
	p.y += 8
	p.pdf.SetFont("Helvetica", "", bodySize)
}

// Render lays the document out into PDF bytes. The input is not mutated;
// totals are recomputed from the raw amounts before drawing.
func (r *Renderer) Render(doc *entity.QuotationDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	now := r.now()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle("Cotización", true)
	pdf.SetAuthor(catalog.CompanyName, true)

	w, h := pdf.GetPageSize()
	p := &page{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  w,
		height: h,
	}
	p.newPage()

	r.renderHeader(p, doc, now)
	r.renderProject(p, doc)
	r.renderImprovedRequirements(p, doc)
	r.renderFeatureCards(p, doc)
	r.renderStructure(p, doc)
	r.renderIntegration(p, doc)
	summary := r.renderPricing(p, doc)
	r.renderConditions(p, doc, summary)
	r.renderSignature(p)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quotation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderHeader(p *page, doc *entity.QuotationDocument, now time.Time) {
	// Thin lilac rule across the top of the first page
	p.pdf.SetFillColor(102, 51, 153)
	p.pdf.Rect(0, 0, p.width, 3, "F")
	p.pdf.SetTextColor(0, 0, 0)
	p.y = pageMargin

	p.pdf.SetFont("Helvetica", "", bodySize)
	p.text(pageMargin, p.y, fmt.Sprintf("Lima, %s", SpanishDate(now)))
	p.y += 15

	company := strings.TrimSpace(doc.CompanyName)
	if company == "" {
		company = "[NOMBRE DE LA EMPRESA]"
	}
	p.pdf.SetFont("Helvetica", "B", bodySize)
	p.text(pageMargin, p.y, fmt.Sprintf("Señores %s", company))
	p.y += 8

	p.wrapped("De nuestra especial consideración:", bodySize, 0)
	p.y += 4
	p.wrapped("Luego de extenderle un cordial saludo por medio de la presente, tenemos el agrado de hacerles llegar nuestra propuesta para atender su requerimiento.", bodySize, 0)
	p.y += 10
}

func (r *Renderer) renderProject(p *page, doc *entity.QuotationDocument) {
	if strings.TrimSpace(doc.ProjectDescription) == "" {
		return
	}
	p.subtitle("El proyecto")
	p.wrapped(doc.ProjectDescription, bodySize, 0)
	p.y += 10
}

func (r *Renderer) renderImprovedRequirements(p *page, doc *entity.QuotationDocument) {
	improved := strings.TrimSpace(doc.ImprovedRequirements)
	if improved == "" {
		return
	}
	p.subtitle("Requerimientos del proyecto:")
	p.wrapped(Sanitize(improved), bodySize, 0)
	p.y += 10
}

type card struct {
	title   string
	body    string
	visible bool
}

func (r *Renderer) renderFeatureCards(p *page, doc *entity.QuotationDocument) {
	if len(doc.Features) > 0 {
		p.subtitle("Principales características a implementar en la web:")
		for i, feature := range doc.Features {
			p.wrapped(fmt.Sprintf("%d. %s", i+1, feature.Content), bodySize, 5)
			p.y += 3
		}
		p.y += 8
	}

	cards := []card{
		{"Proceso del Diseño UX:", catalog.UXProcessText, doc.Visibility.ShowUXProcess()},
		{"Proceso del Diseño UI:", catalog.UIProcessText, doc.Visibility.ShowUIProcess()},
		{"Proceso de Análisis SEO:", catalog.SEOProcessText, doc.Visibility.ShowSEOProcess()},
		{"Entregables:", catalog.DeliverablesText, doc.Visibility.ShowDeliverables()},
		{"Maquetación web y mobile:", catalog.WebMobileText, doc.Visibility.ShowWebMobile()},
		{"Consideraciones:", catalog.ConsiderationsText, doc.Visibility.ShowConsiderations()},
		{"No incluye:", catalog.ExclusionsText, doc.Visibility.ShowConsiderations()},
	}
	for _, c := range cards {
		if !c.visible {
			continue
		}
		p.subtitle(c.title)
		p.wrapped(c.body, bodySize, 5)
		p.y += 8
	}
}

func (r *Renderer) renderStructure(p *page, doc *entity.QuotationDocument) {
	p.title("Estructura propuesta de la página web:")
	if strings.TrimSpace(doc.PageDetail) != "" {
		p.wrapped(Sanitize(doc.PageDetail), bodySize, 0)
	} else {
		p.wrapped(catalog.PlaceholderPageDetail, bodySize, 0)
	}
	p.y += 10
}

func (r *Renderer) renderIntegration(p *page, doc *entity.QuotationDocument) {
	p.title("Integración:")
	text := catalog.PlaceholderCRM
	if doc.CRMSelected != "" {
		text = fmt.Sprintf("CRM seleccionado: %s", doc.CRMSelected)
		if doc.CRMSelected == "Otros" && doc.CRMOther != "" {
			text += fmt.Sprintf(" - %s", doc.CRMOther)
		}
	}
	p.wrapped(text, bodySize, 0)
	p.y += 10
}

func (r *Renderer) renderPricing(p *page, doc *entity.QuotationDocument) pricing.Summary {
	// Totals come from the raw amounts; the document itself is left untouched.
	var summary pricing.Summary

	p.title("Propuesta Económica:")
	if len(doc.Items) > 0 {
		headers := []string{"Descripción", "Subtotal", "IGV (18%)", "Total"}
		widths := []float64{0.46, 0.18, 0.18, 0.18}
		rows := make([][]string, 0, len(doc.Items))
		for _, item := range doc.Items {
			t := pricing.ComputeLineItem(item.Amount, item.Discount)
			summary.ItemsTotal += t.Total
			rows = append(rows, []string{
				item.Description,
				"$" + pricing.FormatAmount(t.Subtotal),
				"$" + pricing.FormatAmount(t.IGV),
				"$" + pricing.FormatAmount(t.Total),
			})
		}
		r.drawTable(p, headers, widths, rows)
		p.y += 5
		p.pdf.SetFont("Helvetica", "B", bodySize)
		p.ensureSpace(lineHeight)
		p.text(pageMargin, p.y, fmt.Sprintf("Total: $%s", pricing.FormatAmount(summary.ItemsTotal)))
		p.y += 15
	} else {
		p.wrapped(catalog.PlaceholderItems, bodySize, 0)
		p.y += 15
	}

	p.title("Servicios Adicionales:")
	if len(doc.AdditionalServices) > 0 {
		headers := []string{"Descripción", "IGV (18%)", "Total"}
		widths := []float64{0.6, 0.2, 0.2}
		rows := make([][]string, 0, len(doc.AdditionalServices))
		for _, svc := range doc.AdditionalServices {
			t := pricing.ComputeAdditionalService(svc.Amount)
			summary.ServicesTotal += t.Total
			rows = append(rows, []string{
				svc.Description,
				"$" + pricing.FormatAmount(t.IGV),
				"$" + pricing.FormatAmount(t.Total),
			})
		}
		r.drawTable(p, headers, widths, rows)
		p.y += 5
		p.pdf.SetFont("Helvetica", "B", bodySize)
		p.ensureSpace(lineHeight)
		p.text(pageMargin, p.y, fmt.Sprintf("Total Servicios: $%s", pricing.FormatAmount(summary.ServicesTotal)))
		p.y += 10
	} else {
		p.wrapped(catalog.PlaceholderAdditionalServices, bodySize, 0)
		p.y += 10
	}

	summary.GrandTotal = summary.ItemsTotal + summary.ServicesTotal

	p.pdf.SetFont("Helvetica", "B", subtitleSize)
	p.ensureSpace(lineHeight)
	p.text(pageMargin, p.y, fmt.Sprintf("TOTAL GENERAL: $%s", pricing.FormatAmount(summary.GrandTotal)))
	p.y += 15

	return summary
}

func (r *Renderer) drawTable(p *page, headers []string, widths []float64, rows [][]string) {
	tableWidth := p.contentWidth()

	drawHeader := func() {
		p.pdf.SetFillColor(102, 51, 153)
		p.pdf.SetDrawColor(102, 51, 153)
		p.pdf.SetLineWidth(0.5)
		p.pdf.Rect(pageMargin, p.y, tableWidth, headerHeight, "F")

		p.pdf.SetFont("Helvetica", "B", tableSize)
		p.pdf.SetTextColor(255, 255, 255)
		x := pageMargin
		for i, header := range headers {
			p.text(x+2, p.y+10, header)
			x += widths[i] * tableWidth
		}
		p.pdf.SetTextColor(0, 0, 0)
		p.pdf.SetFont("Helvetica", "", tableSize)
		p.y += headerHeight
	}

	p.ensureSpace(headerHeight + rowHeight)
	drawHeader()

	for rowIdx, row := range rows {
		// Table headers repeat on every page a table spans
		if p.y+rowHeight > p.height-pageMargin {
			p.newPage()
			drawHeader()
		}

		if rowIdx%2 == 0 {
			p.pdf.SetFillColor(248, 249, 250)
			p.pdf.Rect(pageMargin, p.y, tableWidth, rowHeight, "F")
		}
		p.pdf.SetDrawColor(220, 220, 220)
		p.pdf.SetLineWidth(0.2)
		p.pdf.Rect(pageMargin, p.y, tableWidth, rowHeight, "D")

		x := pageMargin
		for i, cell := range row {
			colWidth := widths[i] * tableWidth
			// A long description must not bleed into the next column
			p.pdf.Text(x+2, p.y+8, p.clip(cell, colWidth-4))
			x += colWidth
		}
		p.y += rowHeight
	}
}

func (r *Renderer) renderConditions(p *page, doc *entity.QuotationDocument, _ pricing.Summary) {
	p.title("Condiciones:")

	payment := catalog.ConditionPaymentStandard
	if catalog.IsMejora(doc.ServiceType) {
		payment = catalog.ConditionPaymentMejora
	}

	duration := catalog.ConditionDuration
	if strings.TrimSpace(doc.ProjectDuration) != "" {
		duration = fmt.Sprintf("Duración del Proyecto: %s", doc.ProjectDuration)
	}

	conditions := []string{
		catalog.ConditionValidity,
		payment,
		catalog.ConditionCurrency,
		duration,
	}
	for _, condition := range conditions {
		p.wrapped(condition, bodySize, 0)
		p.y += 3
	}

	p.wrapped("Variaciones en el Tiempo de Entrega:", bodySize, 0)
	p.y += 2
	for _, variation := range catalog.ConditionTimeVariations {
		p.wrapped("• "+variation, bodySize, 5)
		p.y += 3
	}

	for _, condition := range []string{
		catalog.ConditionIP,
		catalog.ConditionConfidentiality,
		catalog.ConditionWarranty,
	} {
		p.wrapped(condition, bodySize, 0)
		p.y += 3
	}
	p.y += 12
}

func (r *Renderer) renderSignature(p *page) {
	p.ensureSpace(40)
	p.pdf.SetFont("Helvetica", "B", bodySize)
	p.text(pageMargin, p.y, "FIRMA:")
	p.y += 20

	p.pdf.SetFont("Helvetica", "B", bodySize)
	p.text(pageMargin, p.y, catalog.SignatoryName)
	p.y += 6
	p.pdf.SetFont("Helvetica", "", bodySize)
	p.text(pageMargin, p.y, catalog.SignatoryTitle)
	p.y += 6
	p.text(pageMargin, p.y, catalog.CompanyName)
}
