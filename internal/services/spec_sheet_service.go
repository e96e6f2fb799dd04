// internal/services/spec_sheet_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/krowne/krownebase/internal/models"
	"github.com/krowne/krownebase/internal/repository"
)

type SpecSheetService struct {
	repo repository.ProductRepository
}

type SpecSheet struct {
	ProductName      string      `json:"productName"`
	SKU              string      `json:"sku"`
	Images           []string    `json:"images"`
	StandardFeatures []string    `json:"standardFeatures"`
	Specifications   []SpecGroup `json:"specifications"`
	Compliance       []string    `json:"compliance"`
}

type SpecGroup struct {
	Key   string    `json:"key"`
	Title string    `json:"title"`
	Rows  []SpecRow `json:"rows"`
}

type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func NewSpecSheetService(repo repository.ProductRepository) *SpecSheetService {
	return &SpecSheetService{repo: repo}
}

func (s *SpecSheetService) GetSpecSheet(ctx context.Context, sku string) (*SpecSheet, error) {
	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return FormatSpecSheet(product), nil
}

func (s *SpecSheetService) RenderHTML(ctx context.Context, sku string) ([]byte, error) {
	sheet, err := s.GetSpecSheet(ctx, sku)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := specSheetTemplate.Execute(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to render spec sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatSpecSheet groups the printable attributes of a product. Blank
// strings and zero numbers are left out of the groups.
func FormatSpecSheet(p *models.Product) *SpecSheet {
	name := p.ProductDescription
	if strings.TrimSpace(name) == "" {
		name = p.Type
	}

	sheet := &SpecSheet{
		ProductName:      name,
		SKU:              p.SKU,
		Images:           append([]string{}, p.Images...),
		StandardFeatures: splitFeatures(p.Features),
		Compliance:       compliance(p),
	}

	groups := []SpecGroup{
		{
			Key:   "dimensionsAndWeight",
			Title: "Dimensions & Weight",
			Rows: specRows(
				num("Length (in)", p.ProductLengthIn),
				num("Width (in)", p.ProductWidthIn),
				num("Height (in)", p.ProductHeightIn),
				num("Depth (in)", p.ProductDepthIn),
				num("Product Weight (lbs)", p.ProductWeightLbs),
				num("Shipping Weight (lbs)", p.ShippingWeightLbs),
				str("Shipping Dimensions", p.ShippingDimensions),
			),
		},
		{
			Key:   "technicalSpecifications",
			Title: "Technical Specifications",
			Rows: specRows(
				str("Voltage", p.Voltage),
				str("Amps", p.Amps),
				str("HP", p.HP),
				num("Hertz (Hz)", p.HertzHz),
				num("Flow Rate (GPM)", p.FlowRateGPM),
				str("Operating Range", p.OperatingRange),
				str("Refrigerant", p.Refrigerant),
				num("BTU/hr (k)", p.BTUHrK),
			),
		},
		{
			Key:   "featuresAndConstruction",
			Title: "Features & Construction",
			Rows: specRows(
				str("Materials", p.Materials),
				str("Finish", p.Finish),
				str("Mounting Style", p.MountingStyle),
				str("Features", p.Features),
				num("Number of Taps", p.NumberOfTaps),
				num("Ice Capacity (lbs)", p.IceCapacityLbs),
			),
		},
		{
			Key:   "pricingAndPackaging",
			Title: "Pricing & Packaging",
			Rows: specRows(
				price("List Price", p.ListPrice),
				price("MAP Price", p.MapPrice),
				num("Case Quantity", p.CaseQuantity),
				num("Pallet Quantity", p.PalletQuantity),
				str("UPC", p.UPC),
				str("HTS Code", p.HTSCode),
			),
		},
		{
			Key:   "warrantyAndSupport",
			Title: "Warranty & Support",
			Rows: specRows(
				str("Warranty", p.Warranty),
				str("Parts & Accessories", p.PartsAndAccessories),
				str("Related Products", p.RelatedProducts),
			),
		},
	}

	for _, g := range groups {
		if len(g.Rows) > 0 {
			sheet.Specifications = append(sheet.Specifications, g)
		}
	}
	return sheet
}

func splitFeatures(features string) []string {
	out := []string{}
	for _, f := range strings.Split(features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func compliance(p *models.Product) []string {
	out := []string{}
	add := func(ok bool, label string) {
		if ok {
			out = append(out, label)
		}
	}
	add(p.NSFCertification != "", "NSF: "+p.NSFCertification)
	add(p.ULCertification != "", "UL: "+p.ULCertification)
	add(p.ETLCertification != "", "ETL: "+p.ETLCertification)
	add(p.CSACertification != "", "CSA: "+p.CSACertification)
	add(p.ADACompliance, "ADA Compliant")
	add(p.MassachusettsListedCertification, "MA Listed")
	add(p.CECListedCertification, "CEC Listed")
	return out
}

func specRows(rows ...*SpecRow) []SpecRow {
	var out []SpecRow
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func str(label, value string) *SpecRow {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &SpecRow{Label: label, Value: strings.TrimSpace(value)}
}

func num(label string, value float64) *SpecRow {
	if value == 0 {
		return nil
	}
	return &SpecRow{Label: label, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func price(label string, value float64) *SpecRow {
	if value == 0 {
		return nil
	}
	return &SpecRow{Label: label, Value: fmt.Sprintf("$%.2f", value)}
}

var specSheetTemplate = template.Must(template.New("spec-sheet").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.ProductName}} ({{.SKU}})</title>
</head>
<body>
	<h1>{{.ProductName}}</h1>
	<p class="sku">SKU: {{.SKU}}</p>
	{{- range .Images}}
	<img src="{{.}}" alt="">
	{{- end}}
	{{- if .StandardFeatures}}
	<h2>Standard Features</h2>
	<ul>
		{{- range .StandardFeatures}}
		<li>{{.}}</li>
		{{- end}}
	</ul>
	{{- end}}
	{{- range .Specifications}}
	<h2>{{.Title}}</h2>
	<table>
		{{- range .Rows}}
		<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
		{{- end}}
	</table>
	{{- end}}
	{{- if .Compliance}}
	<h2>Compliance</h2>
	<ul class="compliance">
		{{- range .Compliance}}
		<li>{{.}}</li>
		{{- end}}
	</ul>
	{{- end}}
</body>
</html>
`))
