// Package tagging assigns catalog tags to products by keyword matching
// against a tag dictionary.
package tagging

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dictionary maps each tag to the keywords that trigger it. Keywords are
// stored lowercased.
type Dictionary struct {
	tags     []string
	keywords map[string][]string
}

// dictionaryFile is the YAML layout accepted by LoadDictionary:
//
//	tags: [Alchemy, Home]
//	keywords:
//	  Beer Systems: [beer, keg, tap]
type dictionaryFile struct {
	Tags     []string            `yaml:"tags"`
	Keywords map[string][]string `yaml:"keywords"`
}

func NewDictionary(tags []string, keywords map[string][]string) *Dictionary {
	d := &Dictionary{keywords: make(map[string][]string, len(keywords))}

	known := make(map[string]bool)
	add := func(tag string) {
		if tag != "" && !known[tag] {
			known[tag] = true
			d.tags = append(d.tags, tag)
		}
	}
	for _, tag := range tags {
		add(strings.TrimSpace(tag))
	}

	for tag, words := range keywords {
		tag = strings.TrimSpace(tag)
		var lowered []string
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				lowered = append(lowered, w)
			}
		}
		if tag == "" || len(lowered) == 0 {
			continue
		}
		add(tag)
		d.keywords[tag] = lowered
	}

	sort.Strings(d.tags)
	return d
}

// LoadDictionary reads a YAML dictionary from path.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tag dictionary %s: %w", path, err)
	}
	if len(file.Keywords) == 0 {
		return nil, fmt.Errorf("tag dictionary %s defines no keywords", path)
	}

	return NewDictionary(file.Tags, file.Keywords), nil
}

// Tags returns every known tag in sorted order, including tags that are
// only ever assigned by hand.
func (d *Dictionary) Tags() []string {
	return append([]string(nil), d.tags...)
}

func (d *Dictionary) Keywords(tag string) []string {
	return append([]string(nil), d.keywords[tag]...)
}

// Default returns the built-in catalog dictionary.
func Default() *Dictionary {
	return NewDictionary(builtinTags, builtinKeywords)
}

var builtinTags = []string{
	"Air Switches", "Alchemy", "Bar Sinks", "Beer Systems", "Beverage Dispensing",
	"Bottle Coolers", "Casters", "Direct Draw Coolers", "Dispensing Faucets", "Drainboards",
	"Drainers & Rinsers", "Drains", "Dry Storage Cabinets", "Dump Sinks", "Electric",
	"Electric Sensor Faucets", "Faucets", "Foodservice", "Freezers", "Gas Connectors", "Gas Systems",
	"Glass Chiller", "Glass Washer", "Hand Sinks", "Home", "Hose Reels", "HydroSift",
	"Ice Bin", "Kits", "Liquor Displays", "Locking Covers", "Mixology",
	"Mop Floor Sinks", "MoveWell", "Mug Froster", "Parts & Accessories", "Pass Thru Units",
	"Perforated Inserts", "Pet Grooming", "Plumbing", "Pot Fillers", "Power Packs",
	"Pre-Rinse Units", "Refrigeration", "Regulator Panels", "Remote", "Robotic Bartenders",
	"Sinks", "Soap Dispensers", "Soda Gun Holders", "Specialized Stations",
	"Speed Units", "Spouts", "Stations", "Storage Cabinets", "Towers", "Trash Chute",
	"Trunk Lines", "Underbar", "Utility", "Vinyl Wrap", "Water Filters", "Workstations",
}

var builtinKeywords = map[string][]string{
	"Air Switches":            {"air switch", "pneumatic switch", "air operated"},
	"Bar Sinks":               {"bar sink", "bartender sink", "cocktail sink"},
	"Beer Systems":            {"beer", "keg", "tap", "draft", "brewery", "ale", "lager"},
	"Beverage Dispensing":     {"beverage", "dispenser", "drink", "pour", "serving"},
	"Bottle Coolers":          {"bottle cooler", "bottle chiller", "bottle refrigerator"},
	"Casters":                 {"caster", "wheel", "rolling", "mobile", "swivel wheel"},
	"Direct Draw Coolers":     {"direct draw", "kegerator", "beer cooler"},
	"Dispensing Faucets":      {"dispensing faucet", "tap faucet", "beer faucet"},
	"Drainboards":             {"drainboard", "drain board", "drying board"},
	"Drainers & Rinsers":      {"drainer", "rinser", "rinse", "drain basket"},
	"Drains":                  {"drain", "drainage", "floor drain", "sink drain"},
	"Dry Storage Cabinets":    {"dry storage", "storage cabinet", "pantry cabinet"},
	"Dump Sinks":              {"dump sink", "janitor sink", "utility sink", "slop sink"},
	"Electric":                {"electric", "electrical", "powered", "motor", "wiring"},
	"Electric Sensor Faucets": {"sensor faucet", "automatic faucet", "touchless faucet", "infrared"},
	"Faucets":                 {"faucet", "spigot", "valve", "tap"},
	"Foodservice":             {"foodservice", "restaurant", "commercial kitchen", "food prep"},
	"Freezers":                {"freezer", "frozen", "ice cream", "gelato"},
	"Gas Connectors":          {"gas connector", "gas fitting", "gas line"},
	"Gas Systems":             {"gas system", "propane", "natural gas", "gas supply"},
	"Glass Chiller":           {"glass chiller", "glass froster", "mug chiller"},
	"Glass Washer":            {"glass washer", "glassware washer", "bar glass"},
	"Hand Sinks":              {"hand sink", "handwashing", "wash station", "lavatory"},
	"Home":                    {"home", "residential", "household", "domestic"},
	"Hose Reels":              {"hose reel", "hose storage", "retractable hose"},
	"HydroSift":               {"hydrosift", "sift", "filtration"},
	"Ice Bin":                 {"ice bin", "ice chest", "ice storage", "ice well"},
	"Kits":                    {"kit", "package", "set", "bundle", "assembly"},
	"Liquor Displays":         {"liquor display", "bottle display", "wine rack", "spirit display"},
	"Locking Covers":          {"locking cover", "security cover", "lockable lid"},
	"Mixology":                {"mixology", "cocktail", "bartending", "mixing"},
	"Mop Floor Sinks":         {"mop sink", "floor sink", "janitor sink", "cleaning sink"},
	"MoveWell":                {"movewell", "mobile", "portable"},
	"Mug Froster":             {"mug froster", "mug chiller", "beer mug"},
	"Parts & Accessories":     {"part", "accessory", "component", "replacement", "spare"},
	"Pass Thru Units":         {"pass thru", "pass through", "serving window"},
	"Perforated Inserts":      {"perforated", "insert", "strainer", "colander"},
	"Pet Grooming":            {"pet grooming", "dog wash", "animal bathing"},
	"Plumbing":                {"plumbing", "pipe", "fitting", "connection", "water line"},
	"Pot Fillers":             {"pot filler", "pasta arm", "swing faucet", "wall mount faucet"},
	"Power Packs":             {"power pack", "motor", "pump", "electrical unit"},
	"Pre-Rinse Units":         {"pre-rinse", "pre rinse", "spray rinse", "dish rinse"},
	"Refrigeration":           {"refrigeration", "cooling", "chiller", "cooler", "refrigerator"},
	"Regulator Panels":        {"regulator panel", "gas regulator", "pressure regulator"},
	"Remote":                  {"remote", "wireless", "control panel", "digital"},
	"Robotic Bartenders":      {"robotic bartender", "automated bartender", "robot"},
	"Sinks":                   {"sink", "basin", "wash basin"},
	"Soap Dispensers":         {"soap dispenser", "hand soap", "sanitizer dispenser"},
	"Soda Gun Holders":        {"soda gun", "beverage gun", "gun holder"},
	"Specialized Stations":    {"station", "workstation", "prep station"},
	"Speed Units":             {"speed unit", "quick serve", "fast service"},
	"Spouts":                  {"spout", "nozzle", "pour spout"},
	"Stations":                {"station", "work station", "prep area"},
	"Storage Cabinets":        {"storage cabinet", "cabinet", "storage unit"},
	"Towers":                  {"tower", "beer tower", "draft tower", "dispensing tower", "beer tap"},
	"Trash Chute":             {"trash chute", "garbage chute", "waste chute"},
	"Trunk Lines":             {"trunk line", "main line", "supply line"},
	"Underbar":                {"underbar", "under bar", "bar equipment"},
	"Utility":                 {"utility", "general purpose", "multi-use"},
	"Vinyl Wrap":              {"vinyl wrap", "vinyl coating", "wrap"},
	"Water Filters":           {"water filter", "filtration", "purification", "filter cartridge"},
	"Workstations":            {"workstation", "work station", "prep station", "work surface"},
}
