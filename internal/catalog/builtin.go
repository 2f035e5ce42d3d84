// Package catalog holds the EPEAT reference checklists and loads
// replacement checklists from YAML or JSON files.
package catalog

import (
	"strings"

	"github.com/alexanderramin/epeat/internal/domain"
)

const requiredSuffix = "(Required)"

// doc builds an item whose required flag is taken from the "(Required)"
// marker in its name.
func doc(name, desc string) domain.Item {
	return domain.Item{
		Name:        name,
		Description: desc,
		Required:    strings.HasSuffix(name, requiredSuffix),
	}
}

func rated(name, desc, example string) domain.Item {
	return domain.Item{Name: name, Description: desc, Example: example}
}

// Documentation returns the documentation checklist of the self-assessment tool.
func Documentation() domain.Catalog {
	return domain.Catalog{
		Name: "EPEAT Documentation",
		Sections: []domain.Section{
			{Key: "environmentalMaterials", Title: "Environmental Materials Documentation", Items: []domain.Item{
				doc("RoHS Compliance (Required)", "Test reports and supplier declarations showing compliance"),
				doc("Cadmium Content", "Documentation of no added cadmium"),
				doc("Mercury in Light Sources (Required)", "Mercury content reporting and documentation"),
				doc("Lead Usage", "Documentation of lead elimination in specified applications"),
				doc("Hexavalent Chromium", "Documentation of chromium elimination"),
				doc("SCCP Flame Retardants (Required)", "Documentation showing no SCCP flame retardants"),
				doc("Battery Composition", "Documentation of battery material content"),
				doc("PVC Content", "Documentation of PVC content in large plastic parts"),
			}},
			{Key: "materialSelection", Title: "Materials Selection Documentation", Items: []domain.Item{
				doc("Recycled Content Declaration (Required)", "Documentation of recycled plastic content"),
				doc("Bio-based Material Declaration (Required)", "Documentation of renewable/bio-based content"),
				doc("Product Weight Declaration (Required)", "Documentation of product weight"),
				doc("Recyclability Documentation", "Evidence of recyclability percentage"),
			}},
			{Key: "designEndOfLife", Title: "Design for End of Life Documentation", Items: []domain.Item{
				doc("Special Handling Documentation (Required)", "Materials requiring special handling"),
				doc("Coating Compatibility (Required)", "Paint/coating recycling compatibility"),
				doc("Disassembly Instructions (Required)", "External enclosure disassembly"),
				doc("Component Marking (Required)", "Plastic component marking documentation"),
				doc("Hazardous Materials (Required)", "Hazardous component identification"),
			}},
			{Key: "productLongevity", Title: "Product Longevity Documentation", Items: []domain.Item{
				doc("Warranty Documentation (Required)", "Three-year warranty details"),
				doc("Upgrade Documentation (Required)", "Common tools upgrade instructions"),
				doc("Modular Design", "Documentation of modular components"),
				doc("Replacement Parts", "Spare parts availability documentation"),
			}},
			{Key: "energyConservation", Title: "Energy Conservation Documentation", Items: []domain.Item{
				doc("Energy Star Certification (Required)", "ENERGY STAR compliance documentation"),
				doc("Renewable Energy", "Documentation of renewable energy options"),
			}},
			{Key: "endOfLife", Title: "End of Life Management Documentation", Items: []domain.Item{
				doc("Take-back Service (Required)", "Product take-back program documentation"),
				doc("Battery Take-back (Required)", "Battery recycling program documentation"),
				doc("Recycling Vendor Audits", "Recycling vendor certification documentation"),
			}},
			{Key: "corporatePerformance", Title: "Corporate Performance Documentation", Items: []domain.Item{
				doc("ISO 14001 Policy (Required)", "Environmental management system documentation"),
				doc("Environmental Management (Required)", "Self-certified system documentation"),
				doc("Corporate Reporting (Required)", "Environmental performance reporting"),
			}},
			{Key: "packaging", Title: "Packaging Documentation", Items: []domain.Item{
				doc("Packaging Toxics (Required)", "Reduced toxics documentation"),
				doc("Material Separation (Required)", "Separable materials documentation"),
				doc("Recycled Content (Required)", "Recycled content declaration"),
				doc("Take-back Program", "Packaging take-back documentation"),
			}},
		},
	}
}

// SelfRating returns the practice areas rated on the 0–5 scale.
func SelfRating() domain.Catalog {
	return domain.Catalog{
		Name: "EPEAT Self-Rating",
		Sections: []domain.Section{
			{Key: "materialContent", Title: "Material Content",
				Description: "Rate your material compliance and documentation status",
				Items: []domain.Item{
					rated("RoHS Compliance Status", "Level of RoHS testing and documentation completion",
						"Example: Score 4 for full RoHS testing completion, 0 for no testing started"),
					rated("Mercury Content Documentation", "Status of mercury content documentation and control",
						"Example: Score 5 for comprehensive mercury documentation, 2 for partial records"),
					rated("Flame Retardant Compliance", "Level of flame retardant documentation and testing",
						"Example: Score 0 if flame retardant documentation hasn't been started"),
					rated("Material Declaration Completeness", "Overall status of material content documentation",
						"Example: Score 4 for full RoHS but 0 for flame retardants shows varying completion"),
				}},
			{Key: "designFeatures", Title: "Design Features",
				Description: "Rate your product's design for sustainability features",
				Items: []domain.Item{
					rated("Design for Recycling Features", "How well product is designed for end-of-life recycling",
						"Example: Score 4 if product can be easily disassembled"),
					rated("Durability Measures", "Design features that enhance product longevity",
						"Example: Score 3 for standard durability features"),
					rated("Repair Accessibility", "Ease of product repair and maintenance",
						"Example: Score 2 for limited repair options"),
					rated("Warranty Coverage", "Comprehensiveness of warranty protection",
						"Example: Score 4 for strong warranty but 2 for limited serviceability"),
				}},
			{Key: "manufacturingProcesses", Title: "Manufacturing Processes",
				Description: "Rate your manufacturing process controls and systems",
				Items: []domain.Item{
					rated("Energy Management System", "System for monitoring and optimizing energy usage",
						"Example: Score 5 for certified system, 2 for basic consumption tracking"),
					rated("Water Conservation Measures", "Programs and systems for water usage reduction",
						"Example: Score 5 for comprehensive water recycling, 2 for basic monitoring"),
					rated("Waste Reduction Programs", "Initiatives to minimize manufacturing waste",
						"Example: Score 5 for zero-waste program, 2 for basic waste handling"),
					rated("Chemical Handling Procedures", "Protocols for safe chemical management",
						"Example: Score 5 for advanced tracking system, 2 for basic procedures"),
				}},
			{Key: "performanceStandards", Title: "Performance Standards",
				Description: "Rate your quality and performance monitoring systems",
				Items: []domain.Item{
					rated("Efficiency Measurements", "Systems for measuring and tracking efficiency",
						"Example: Score 5 for comprehensive efficiency testing, 2 for basic metrics"),
					rated("Quality Control Processes", "Procedures for ensuring product quality",
						"Example: Score 2 for limited quality control systems"),
					rated("Testing Procedures", "Methods for product testing and validation",
						"Example: Score 5 for comprehensive test protocols, 2 for basic testing"),
					rated("Performance Documentation", "Performance data management systems",
						"Example: Score 5 for comprehensive testing but 2 for limited quality control"),
				}},
		},
	}
}

// Tracker returns the checklist of the assessment tracker. Items carry
// explicit ids and required flags.
func Tracker() domain.Catalog {
	return domain.Catalog{
		Name: "EPEAT Assessment Tracker",
		Sections: []domain.Section{
			{Key: "environmental", Title: "Environmental Materials", Items: []domain.Item{
				{ID: "rohs", Name: "RoHS Compliance", Required: true},
				{ID: "mercury", Name: "Mercury Content", Required: true},
				{ID: "lead", Name: "Lead Usage"},
				{ID: "battery", Name: "Battery Composition"},
			}},
			{Key: "materials", Title: "Materials Selection", Items: []domain.Item{
				{ID: "recycled", Name: "Recycled Content", Required: true},
				{ID: "biobased", Name: "Bio-based Material", Required: true},
				{ID: "weight", Name: "Product Weight", Required: true},
			}},
			{Key: "design", Title: "Design for End of Life", Items: []domain.Item{
				{ID: "disassembly", Name: "Disassembly Instructions", Required: true},
				{ID: "marking", Name: "Component Marking", Required: true},
				{ID: "hazardous", Name: "Hazardous Materials", Required: true},
			}},
		},
	}
}

// CriticalRisks returns the risks that can block or defer certification.
func CriticalRisks() []domain.Risk {
	return []domain.Risk{
		{ID: "testingGaps", Label: "Missing or incomplete test capabilities"},
		{ID: "staffShortages", Label: "Critical personnel gaps"},
		{ID: "resourceLimits", Label: "Significant resource constraints"},
		{ID: "technicalIssues", Label: "Major technical challenges"},
	}
}
