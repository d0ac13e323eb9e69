package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/alavista-lab/cotizador-api/internal/domain/pricing"
)

// Feature is one entry of the reorderable "características" list. Slice order
// is the user-defined order and must survive save/load untouched.
type Feature struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// LineItem is a priced proposal row. Amount and Discount keep the raw form
// input; the derived fields are recomputed through the pricing package on
// every edit and stored alongside for display.
type LineItem struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Amount      pricing.Amount `json:"amount"`
	Discount    pricing.Amount `json:"discount"`
	Subtotal    float64        `json:"subtotal"`
	IGV         float64        `json:"igv"`
	Total       float64        `json:"total"`
}

// TotalValue implements pricing.Totaler.
func (i LineItem) TotalValue() float64 { return i.Total }

// Recompute refreshes the derived fields from the raw amount and discount.
func (i *LineItem) Recompute() {
	t := pricing.ComputeLineItem(i.Amount, i.Discount)
	i.Subtotal = t.Subtotal
	i.IGV = t.IGV
	i.Total = t.Total
}

// AdditionalService is a priced extra with no discount field.
type AdditionalService struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Amount      pricing.Amount `json:"amount"`
	IGV         float64        `json:"igv"`
	Total       float64        `json:"total"`
}

// TotalValue implements pricing.Totaler.
func (s AdditionalService) TotalValue() float64 { return s.Total }

// Recompute refreshes the derived fields from the raw amount.
func (s *AdditionalService) Recompute() {
	t := pricing.ComputeAdditionalService(s.Amount)
	s.IGV = t.IGV
	s.Total = t.Total
}

// SectionVisibility carries the per-document toggles for the six removable
// boilerplate cards. Fields are pointers so that payloads saved before the
// toggles existed load with every section visible, not hidden.
type SectionVisibility struct {
	UXProcess      *bool `json:"ux_process,omitempty"`
	UIProcess      *bool `json:"ui_process,omitempty"`
	SEOProcess     *bool `json:"seo_process,omitempty"`
	Deliverables   *bool `json:"deliverables,omitempty"`
	WebMobile      *bool `json:"web_mobile,omitempty"`
	Considerations *bool `json:"considerations,omitempty"`
}

func visible(b *bool) bool { return b == nil || *b }

func (v *SectionVisibility) ShowUXProcess() bool {
	return v == nil || visible(v.UXProcess)
}

func (v *SectionVisibility) ShowUIProcess() bool {
	return v == nil || visible(v.UIProcess)
}

func (v *SectionVisibility) ShowSEOProcess() bool {
	return v == nil || visible(v.SEOProcess)
}

func (v *SectionVisibility) ShowDeliverables() bool {
	return v == nil || visible(v.Deliverables)
}

func (v *SectionVisibility) ShowWebMobile() bool {
	return v == nil || visible(v.WebMobile)
}

func (v *SectionVisibility) ShowConsiderations() bool {
	return v == nil || visible(v.Considerations)
}

// QuotationDocument is the full editable quotation state: client and project
// metadata, the enumerated classifications, the free-text slots filled by the
// enrichment services, the priced collections and the boilerplate toggles.
// It is what the form edits, what drafts hold and what operations snapshot.
type QuotationDocument struct {
	Date         string `json:"date"`
	CompanyName  string `json:"company_name"`
	ProjectName  string `json:"project_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`

	Sector      string `json:"sector"`
	ServiceType string `json:"service_type"`
	Tier        string `json:"tier"`

	Requirements         string `json:"requirements"`
	ImprovedRequirements string `json:"improved_requirements"`
	ServiceNeed          string `json:"service_need"`
	ProjectDescription   string `json:"project_description"`

	AnalysisURL     string `json:"analysis_url"`
	PageDetail      string `json:"page_detail"`
	ProjectDuration string `json:"project_duration"`

	CRMSelected string `json:"crm_selected"`
	CRMOther    string `json:"crm_other"`

	Features           []Feature           `json:"features"`
	Items              []LineItem          `json:"items"`
	AdditionalServices []AdditionalService `json:"additional_services"`

	Visibility *SectionVisibility `json:"visibility,omitempty"`
}

// Recompute re-derives every priced field and returns the aggregate summary.
func (d *QuotationDocument) Recompute() pricing.Summary {
	for i := range d.Items {
		d.Items[i].Recompute()
	}
	for i := range d.AdditionalServices {
		d.AdditionalServices[i].Recompute()
	}
	return pricing.Aggregate(d.Items, d.AdditionalServices)
}

// DocumentPayload stores a QuotationDocument snapshot as a jsonb column.
type DocumentPayload struct {
	QuotationDocument
}

// Value implements driver.Valuer for GORM.
func (p DocumentPayload) Value() (driver.Value, error) {
	return json.Marshal(p.QuotationDocument)
}

// Scan implements sql.Scanner for GORM.
func (p *DocumentPayload) Scan(value interface{}) error {
	if value == nil {
		*p = DocumentPayload{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported payload column type")
	}
	return json.Unmarshal(data, &p.QuotationDocument)
}

// GormDataType tells GORM to create a jsonb column on postgres; sqlite (used
// in tests) stores the same bytes as text through the Valuer/Scanner pair.
func (DocumentPayload) GormDataType() string {
	return "jsonb"
}
