// internal/models/product.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is one row of the flat catalog table, keyed by SKU. Column names
// match the CSV import headers one to one.
type Product struct {
	SKU                              string         `json:"sku" gorm:"column:sku;primaryKey;size:64"`
	Family                           string         `json:"family" gorm:"column:family"`
	ProductsAvailableToServe         string         `json:"products_available_to_serve" gorm:"column:products_available_to_serve"`
	ShippingDimensions               string         `json:"shipping_dimensions" gorm:"column:shipping_dimensions"`
	CaseDimensionsIn                 string         `json:"case_dimensions_in" gorm:"column:case_dimensions_in"`
	ProductLengthIn                  float64        `json:"product_length_in" gorm:"column:product_length_in"`
	ProductWeightLbs                 float64        `json:"product_weight_lbs" gorm:"column:product_weight_lbs"`
	ListPrice                        float64        `json:"list_price" gorm:"column:list_price"`
	MapPrice                         float64        `json:"map_price" gorm:"column:map_price"`
	UPC                              string         `json:"upc" gorm:"column:upc"`
	HTSCode                          string         `json:"hts_code" gorm:"column:hts_code"`
	FlowRateGPM                      float64        `json:"flow_rate_gpm" gorm:"column:flow_rate_gpm"`
	PalletQuantity                   float64        `json:"pallet_quantity" gorm:"column:pallet_quantity"`
	CaseQuantity                     float64        `json:"case_quantity" gorm:"column:case_quantity"`
	CasePrice                        float64        `json:"case_price" gorm:"column:case_price"`
	CaseWeightLbs                    float64        `json:"case_weight_lbs" gorm:"column:case_weight_lbs"`
	NumberOfTaps                     float64        `json:"number_of_taps" gorm:"column:number_of_taps"`
	GlycolLines                      float64        `json:"glycol_lines" gorm:"column:glycol_lines"`
	IceCapacityLbs                   float64        `json:"ice_capacity_lbs" gorm:"column:ice_capacity_lbs"`
	BTUHrK                           float64        `json:"btuhr_k" gorm:"column:btuhr_k"`
	InteriorDiameterIn               float64        `json:"interior_diameter_in" gorm:"column:interior_diameter_in"`
	ShippingWeightLbs                float64        `json:"shipping_weight_lbs" gorm:"column:shipping_weight_lbs"`
	WorkingHeightIn                  float64        `json:"working_height_in" gorm:"column:working_height_in"`
	TrunkLineLengthIn                float64        `json:"trunk_line_length_in" gorm:"column:trunk_line_length_in"`
	HeightOfCeilingIn                float64        `json:"height_of_ceiling_in" gorm:"column:height_of_ceiling_in"`
	DiameterIn                       float64        `json:"diameter_in" gorm:"column:diameter_in"`
	CasterQuantity                   float64        `json:"caster_quantity" gorm:"column:caster_quantity"`
	MugCapacity                      float64        `json:"mug_capacity" gorm:"column:mug_capacity"`
	WheelDiameterIn                  float64        `json:"wheel_diameter_in" gorm:"column:wheel_diameter_in"`
	SprayHeadFlowRateGPM             float64        `json:"spray_head_flow_rate_gpm" gorm:"column:spray_head_flow_rate_gpm"`
	HoseLengthIn                     float64        `json:"hose_length_in" gorm:"column:hose_length_in"`
	HoseLengthFt                     float64        `json:"hose_length_ft" gorm:"column:hose_length_ft"`
	GallonCapacity                   float64        `json:"gallon_capacity" gorm:"column:gallon_capacity"`
	BeverageLineDiameterIn           float64        `json:"beverage_line_diameter_in" gorm:"column:beverage_line_diameter_in"`
	ChaseDiameterIn                  float64        `json:"chase_diameter_in" gorm:"column:chase_diameter_in"`
	GlycolLineDiameterIn             float64        `json:"glycol_line_diameter_in" gorm:"column:glycol_line_diameter_in"`
	HertzHz                          float64        `json:"hertz_hz" gorm:"column:hertz_hz"`
	MassachusettsListedCertification bool           `json:"massachusetts_listed_certification" gorm:"column:massachusetts_listed_certification"`
	CECListedCertification           bool           `json:"cec_listed_certification" gorm:"column:cec_listed_certification"`
	ADACompliance                    bool           `json:"ada_compliance" gorm:"column:ada_compliance"`
	FreightClass                     string         `json:"freight_class" gorm:"column:freight_class"`
	CountryOfOrigin                  string         `json:"country_of_origin" gorm:"column:country_of_origin"`
	ProductionCode                   string         `json:"production_code" gorm:"column:production_code"`
	ProductStatus                    string         `json:"product_status" gorm:"column:product_status"`
	CompressorLocation               string         `json:"compressor_location" gorm:"column:compressor_location"`
	TopFinishOptions                 string         `json:"top_finish_options" gorm:"column:top_finish_options"`
	ColdPlate                        string         `json:"cold_plate" gorm:"column:cold_plate"`
	HandleType                       string         `json:"handle_type" gorm:"column:handle_type"`
	SpoutStyle                       string         `json:"spout_style" gorm:"column:spout_style"`
	Brakes                           string         `json:"brakes" gorm:"column:brakes"`
	Inlet                            string         `json:"inlet" gorm:"column:inlet"`
	BottleCapacity                   string         `json:"bottle_capacity" gorm:"column:bottle_capacity"`
	Refrigerant                      string         `json:"refrigerant" gorm:"column:refrigerant"`
	SpoutSizeIn                      float64        `json:"spout_size_in" gorm:"column:spout_size_in"`
	Thread                           string         `json:"thread" gorm:"column:thread"`
	Pumps                            string         `json:"pumps" gorm:"column:pumps"`
	GasSystemCompatibility           string         `json:"gas_system_compatibility" gorm:"column:gas_system_compatibility"`
	WrapStyle                        string         `json:"wrap_style" gorm:"column:wrap_style"`
	RestockFee                       string         `json:"restock_fee" gorm:"column:restock_fee"`
	DINCables                        string         `json:"din_cables" gorm:"column:din_cables"`
	SprayHeadPattern                 string         `json:"spray_head_pattern" gorm:"column:spray_head_pattern"`
	Type                             string         `json:"type" gorm:"column:type"`
	HeatRecovery                     string         `json:"heat_recovery" gorm:"column:heat_recovery"`
	StreamType                       string         `json:"stream_type" gorm:"column:stream_type"`
	CabinetSideFinish                string         `json:"cabinet_side_finish" gorm:"column:cabinet_side_finish"`
	FrontFinish                      string         `json:"front_finish" gorm:"column:front_finish"`
	Division                         string         `json:"division" gorm:"column:division"`
	Visibility                       string         `json:"visibility" gorm:"column:visibility"`
	NSFCertification                 string         `json:"nsf_certification" gorm:"column:nsf_certification"`
	CSACertification                 string         `json:"csa_certification" gorm:"column:csa_certification"`
	ULCertification                  string         `json:"ul_certification" gorm:"column:ul_certification"`
	ETLCertification                 string         `json:"etl_certification" gorm:"column:etl_certification"`
	ASSECertification                string         `json:"asse_certification" gorm:"column:asse_certification"`
	IAMPOCertification               string         `json:"iampo_certification" gorm:"column:iampo_certification"`
	Series                           string         `json:"series" gorm:"column:series"`
	Warranty                         string         `json:"warranty" gorm:"column:warranty"`
	DoorDrawerFinishOptions          string         `json:"doordrawer_finish_options" gorm:"column:doordrawer_finish_options"`
	MountingStyle                    string         `json:"mounting_style" gorm:"column:mounting_style"`
	TowerStyle                       string         `json:"tower_style" gorm:"column:tower_style"`
	UnderbarStructureOptions         string         `json:"underbar_structure_options" gorm:"column:underbar_structure_options"`
	BowlLocation                     string         `json:"bowl_location" gorm:"column:bowl_location"`
	Centers                          string         `json:"centers" gorm:"column:centers"`
	DoorDrawerStyle                  string         `json:"doordrawer_style" gorm:"column:doordrawer_style"`
	DrainSize                        string         `json:"drain_size" gorm:"column:drain_size"`
	Outlet                           string         `json:"outlet" gorm:"column:outlet"`
	BeverageCompatibilityOptions     string         `json:"beverage_compatibility_options" gorm:"column:beverage_compatibility_options"`
	TowerLocation                    string         `json:"tower_location" gorm:"column:tower_location"`
	TowerFinish                      string         `json:"tower_finish" gorm:"column:tower_finish"`
	HP                               string         `json:"hp" gorm:"column:hp"`
	TowerMounting                    string         `json:"tower_mounting" gorm:"column:tower_mounting"`
	IceBinLocation                   string         `json:"ice_bin_location" gorm:"column:ice_bin_location"`
	PowerSource                      string         `json:"power_source" gorm:"column:power_source"`
	Voltage                          string         `json:"voltage" gorm:"column:voltage"`
	DrainLocation                    string         `json:"drain_location" gorm:"column:drain_location"`
	PSIRange                         string         `json:"psi_range" gorm:"column:psi_range"`
	ValveType                        string         `json:"valve_type" gorm:"column:valve_type"`
	PlugType                         string         `json:"plug_type" gorm:"column:plug_type"`
	Collaboration                    string         `json:"collaboration" gorm:"column:collaboration"`
	ProductHeightIn                  float64        `json:"product_height_in" gorm:"column:product_height_in"`
	Features                         string         `json:"features" gorm:"column:features;type:text"`
	ProductDescription               string         `json:"product_description" gorm:"column:product_description;type:text"`
	ERPDescription                   string         `json:"erp_description" gorm:"column:erp_description;type:text"`
	Materials                        string         `json:"materials" gorm:"column:materials"`
	Finish                           string         `json:"finish" gorm:"column:finish"`
	ProductDepthIn                   float64        `json:"product_depth_in" gorm:"column:product_depth_in"`
	OperatingRange                   string         `json:"operating_range" gorm:"column:operating_range"`
	RaisesEquipment                  string         `json:"raises_equipment" gorm:"column:raises_equipment"`
	TemperatureRange                 string         `json:"temperature_range" gorm:"column:temperature_range"`
	AQDescription                    string         `json:"aq_description" gorm:"column:aq_description;type:text"`
	DesignUpgrades                   string         `json:"design_upgrades" gorm:"column:design_upgrades;type:text"`
	FAQs                             string         `json:"faqs" gorm:"column:faqs;type:text"`
	IssuesSolutions                  string         `json:"issuessolutions" gorm:"column:issuessolutions;type:text"`
	UpsellItems                      string         `json:"upsell_items" gorm:"column:upsell_items"`
	ParentProducts                   string         `json:"parent_products" gorm:"column:parent_products"`
	PartsAndAccessories              string         `json:"parts_and_accessories" gorm:"column:parts_and_accessories"`
	BeverageLines                    string         `json:"beverage_lines" gorm:"column:beverage_lines"`
	Images                           pq.StringArray `json:"images" gorm:"column:images;type:text[]"`
	Videos                           pq.StringArray `json:"videos" gorm:"column:videos;type:text[]"`
	SpecSheet                        pq.StringArray `json:"spec_sheet" gorm:"column:spec_sheet;type:text[]"`
	Manuals                          string         `json:"manuals" gorm:"column:manuals"`
	SellSheet                        string         `json:"sell_sheet" gorm:"column:sell_sheet"`
	Brochure                         string         `json:"brochure" gorm:"column:brochure"`
	BacksplashHeightIn               float64        `json:"backsplash_height_in" gorm:"column:backsplash_height_in"`
	BowlSizeIn                       string         `json:"bowl_size_in" gorm:"column:bowl_size_in"`
	PerforatedInserts                string         `json:"perforated_inserts" gorm:"column:perforated_inserts"`
	RelatedProducts                  string         `json:"related_products" gorm:"column:related_products"`
	Includes                         string         `json:"includes" gorm:"column:includes"`
	Amps                             string         `json:"amps" gorm:"column:amps"`
	CompressorSizeIn                 string         `json:"compressor_size_in" gorm:"column:compressor_size_in"`
	Phase                            string         `json:"phase" gorm:"column:phase"`
	PartsByKrowne                    string         `json:"partsbykrowne" gorm:"column:partsbykrowne"`
	LoadCapacityLbsPerCaster         string         `json:"load_capacity_lbs_per_caster" gorm:"column:load_capacity_lbs_per_caster"`
	PlateSizeIn                      string         `json:"plate_size_in" gorm:"column:plate_size_in"`
	CasterOverallHeightIn            string         `json:"caster_overall_height_in" gorm:"column:caster_overall_height_in"`
	KegCapacity                      string         `json:"keg_capacity" gorm:"column:keg_capacity"`
	ProductWeight                    string         `json:"product_weight" gorm:"column:product_weight"`
	DrainOutlet                      string         `json:"drain_outlet" gorm:"column:drain_outlet"`
	ProductWidthIn                   float64        `json:"product_width_in" gorm:"column:product_width_in"`
	CaliforniaPropWarning            string         `json:"california_prop_warning" gorm:"column:california_prop_warning"`
	WebsiteLink                      string         `json:"website_link" gorm:"column:website_link"`
	ProductHeightWithoutLegsIn       string         `json:"product_height_without_legs_in" gorm:"column:product_height_without_legs_in"`
	InternalOnlyProduct              string         `json:"internal_only_product" gorm:"column:internal_only_product"`
	COO                              string         `json:"coo" gorm:"column:coo"`
	Tags                             pq.StringArray `json:"tags" gorm:"column:tags;type:text[]"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;index"`
}

func (Product) TableName() string {
	return "products"
}
