// internal/models/product_schema.go
package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lib/pq"

	"github.com/krowne/krownebase/internal/utils"
)

type CoercionRule int

const (
	RuleString CoercionRule = iota
	RuleNumber
	RuleBoolean
	RuleList
)

func (r CoercionRule) String() string {
	switch r {
	case RuleNumber:
		return "number"
	case RuleBoolean:
		return "boolean"
	case RuleList:
		return "list"
	default:
		return "string"
	}
}

// FieldSpec maps one import column to its coercion rule. The target field
// is the Product field whose json tag equals Column.
type FieldSpec struct {
	Column string
	Rule   CoercionRule
}

// ProductSchema lists every recognised import column in upsert order.
var ProductSchema = []FieldSpec{
	{"sku", RuleString},
	{"family", RuleString},
	{"products_available_to_serve", RuleString},
	{"shipping_dimensions", RuleString},
	{"case_dimensions_in", RuleString},
	{"product_length_in", RuleNumber},
	{"product_weight_lbs", RuleNumber},
	{"list_price", RuleNumber},
	{"map_price", RuleNumber},
	{"upc", RuleString},
	{"hts_code", RuleString},
	{"flow_rate_gpm", RuleNumber},
	{"pallet_quantity", RuleNumber},
	{"case_quantity", RuleNumber},
	{"case_price", RuleNumber},
	{"case_weight_lbs", RuleNumber},
	{"number_of_taps", RuleNumber},
	{"glycol_lines", RuleNumber},
	{"ice_capacity_lbs", RuleNumber},
	{"btuhr_k", RuleNumber},
	{"interior_diameter_in", RuleNumber},
	{"shipping_weight_lbs", RuleNumber},
	{"working_height_in", RuleNumber},
	{"trunk_line_length_in", RuleNumber},
	{"height_of_ceiling_in", RuleNumber},
	{"diameter_in", RuleNumber},
	{"caster_quantity", RuleNumber},
	{"mug_capacity", RuleNumber},
	{"wheel_diameter_in", RuleNumber},
	{"spray_head_flow_rate_gpm", RuleNumber},
	{"hose_length_in", RuleNumber},
	{"hose_length_ft", RuleNumber},
	{"gallon_capacity", RuleNumber},
	{"beverage_line_diameter_in", RuleNumber},
	{"chase_diameter_in", RuleNumber},
	{"glycol_line_diameter_in", RuleNumber},
	{"hertz_hz", RuleNumber},
	{"massachusetts_listed_certification", RuleBoolean},
	{"cec_listed_certification", RuleBoolean},
	{"ada_compliance", RuleBoolean},
	{"freight_class", RuleString},
	{"country_of_origin", RuleString},
	{"production_code", RuleString},
	{"product_status", RuleString},
	{"compressor_location", RuleString},
	{"top_finish_options", RuleString},
	{"cold_plate", RuleString},
	{"handle_type", RuleString},
	{"spout_style", RuleString},
	{"brakes", RuleString},
	{"inlet", RuleString},
	{"bottle_capacity", RuleString},
	{"refrigerant", RuleString},
	{"spout_size_in", RuleNumber},
	{"thread", RuleString},
	{"pumps", RuleString},
	{"gas_system_compatibility", RuleString},
	{"wrap_style", RuleString},
	{"restock_fee", RuleString},
	{"din_cables", RuleString},
	{"spray_head_pattern", RuleString},
	{"type", RuleString},
	{"heat_recovery", RuleString},
	{"stream_type", RuleString},
	{"cabinet_side_finish", RuleString},
	{"front_finish", RuleString},
	{"division", RuleString},
	{"visibility", RuleString},
	{"nsf_certification", RuleString},
	{"csa_certification", RuleString},
	{"ul_certification", RuleString},
	{"etl_certification", RuleString},
	{"asse_certification", RuleString},
	{"iampo_certification", RuleString},
	{"series", RuleString},
	{"warranty", RuleString},
	{"doordrawer_finish_options", RuleString},
	{"mounting_style", RuleString},
	{"tower_style", RuleString},
	{"underbar_structure_options", RuleString},
	{"bowl_location", RuleString},
	{"centers", RuleString},
	{"doordrawer_style", RuleString},
	{"drain_size", RuleString},
	{"outlet", RuleString},
	{"beverage_compatibility_options", RuleString},
	{"tower_location", RuleString},
	{"tower_finish", RuleString},
	{"hp", RuleString},
	{"tower_mounting", RuleString},
	{"ice_bin_location", RuleString},
	{"power_source", RuleString},
	{"voltage", RuleString},
	{"drain_location", RuleString},
	{"psi_range", RuleString},
	{"valve_type", RuleString},
	{"plug_type", RuleString},
	{"collaboration", RuleString},
	{"product_height_in", RuleNumber},
	{"features", RuleString},
	{"product_description", RuleString},
	{"erp_description", RuleString},
	{"materials", RuleString},
	{"finish", RuleString},
	{"product_depth_in", RuleNumber},
	{"operating_range", RuleString},
	{"raises_equipment", RuleString},
	{"temperature_range", RuleString},
	{"aq_description", RuleString},
	{"design_upgrades", RuleString},
	{"faqs", RuleString},
	{"issuessolutions", RuleString},
	{"upsell_items", RuleString},
	{"parent_products", RuleString},
	{"parts_and_accessories", RuleString},
	{"beverage_lines", RuleString},
	{"images", RuleList},
	{"videos", RuleList},
	{"spec_sheet", RuleList},
	{"manuals", RuleString},
	{"sell_sheet", RuleString},
	{"brochure", RuleString},
	{"backsplash_height_in", RuleNumber},
	{"bowl_size_in", RuleString},
	{"perforated_inserts", RuleString},
	{"related_products", RuleString},
	{"includes", RuleString},
	{"amps", RuleString},
	{"compressor_size_in", RuleString},
	{"phase", RuleString},
	{"partsbykrowne", RuleString},
	{"load_capacity_lbs_per_caster", RuleString},
	{"plate_size_in", RuleString},
	{"caster_overall_height_in", RuleString},
	{"keg_capacity", RuleString},
	{"product_weight", RuleString},
	{"drain_outlet", RuleString},
	{"product_width_in", RuleNumber},
	{"california_prop_warning", RuleString},
	{"website_link", RuleString},
	{"product_height_without_legs_in", RuleString},
	{"internal_only_product", RuleString},
	{"coo", RuleString},
	{"tags", RuleList},
}

var productFieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	t := reflect.TypeOf(Product{})
	byTag := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" {
			byTag[name] = i
		}
	}

	index := make(map[string]int, len(ProductSchema))
	for _, spec := range ProductSchema {
		i, ok := byTag[spec.Column]
		if !ok {
			panic(fmt.Sprintf("models: schema column %q has no Product field", spec.Column))
		}
		if want := ruleKind(spec.Rule); t.Field(i).Type.Kind() != want {
			panic(fmt.Sprintf("models: schema column %q is %s but field %s is %s",
				spec.Column, spec.Rule, t.Field(i).Name, t.Field(i).Type.Kind()))
		}
		index[spec.Column] = i
	}
	return index
}

func ruleKind(rule CoercionRule) reflect.Kind {
	switch rule {
	case RuleNumber:
		return reflect.Float64
	case RuleBoolean:
		return reflect.Bool
	case RuleList:
		return reflect.Slice
	default:
		return reflect.String
	}
}

// ProductFromRow builds a Product from a header->value row. Columns missing
// from the row are treated as blank; unrecognised columns are ignored.
func ProductFromRow(row map[string]string) *Product {
	product := &Product{}
	v := reflect.ValueOf(product).Elem()

	for _, spec := range ProductSchema {
		raw := row[spec.Column]
		field := v.Field(productFieldIndex[spec.Column])

		switch spec.Rule {
		case RuleNumber:
			field.SetFloat(utils.ToNumber(raw, 0))
		case RuleBoolean:
			field.SetBool(utils.ToBoolean(raw))
		case RuleList:
			field.Set(reflect.ValueOf(pq.StringArray(utils.ToArray(raw))))
		default:
			field.SetString(raw)
		}
	}

	return product
}

// ProductColumns returns the schema column names in order.
func ProductColumns() []string {
	columns := make([]string, len(ProductSchema))
	for i, spec := range ProductSchema {
		columns[i] = spec.Column
	}
	return columns
}

// UpsertUpdateColumns are the columns overwritten when an upsert hits an
// existing SKU: every schema column except the key, plus updated_at.
func UpsertUpdateColumns() []string {
	columns := make([]string, 0, len(ProductSchema))
	for _, spec := range ProductSchema {
		if spec.Column != "sku" {
			columns = append(columns, spec.Column)
		}
	}
	return append(columns, "updated_at")
}

// IsBlankRow reports whether every value in row is empty or whitespace.
func IsBlankRow(row map[string]string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
