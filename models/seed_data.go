package models

// DefaultCategories are the categories loaded at bootstrap.
var DefaultCategories = []Category{
	{Name: "Plastic", Color: "#4a90e2", Description: "Plastic materials"},
	{Name: "Paper", Color: "#f39c12", Description: "Paper and cardboard"},
	{Name: "Glass", Color: "#2e8b57", Description: "Glass containers"},
	{Name: "Metal", Color: "#95a5a6", Description: "Metal cans and items"},
	{Name: "E-Waste", Color: "#e74c3c", Description: "Electronic waste"},
	{Name: "Hazardous", Color: "#c0392b", Description: "Hazardous materials"},
	{Name: "Organic", Color: "#8e44ad", Description: "Organic waste"},
}

// DefaultItems is the catalog loaded at bootstrap. Seeding skips names that
// already exist, so deployments can extend the table without fighting the
// defaults.
var DefaultItems = []ItemDefinition{
	{
		Name:        "plastic bottle",
		Instruction: "Rinse and remove caps. Place in blue recycling bin.",
		Points:      5,
		Category:    "Plastic",
		Tips:        []string{"Crush bottles to save space", "Remove labels if possible"},
	},
	{
		Name:        "paper",
		Instruction: "Keep dry and clean. Place in blue recycling bin.",
		Points:      3,
		Category:    "Paper",
		Tips:        []string{"Flatten cardboard boxes", "Remove any plastic wrapping"},
	},
	{
		Name:        "cardboard",
		Instruction: "Flatten boxes. Place in blue recycling bin.",
		Points:      4,
		Category:    "Paper",
		Tips:        []string{"Break down large boxes", "Remove packing tape"},
	},
	{
		Name:        "glass bottle",
		Instruction: "Rinse thoroughly. Place in green glass recycling bin.",
		Points:      6,
		Category:    "Glass",
		Tips:        []string{"Remove metal caps", "Don't break glass - it's harder to recycle"},
	},
	{
		Name:        "aluminum can",
		Instruction: "Rinse and crush if possible. Place in blue recycling bin.",
		Points:      8,
		Category:    "Metal",
		Tips:        []string{"Crushing saves space", "Check for local redemption value"},
	},
	{
		Name:        "electronics",
		Instruction: "Take to designated e-waste recycling center. Do not place in regular bins.",
		Points:      15,
		Category:    "E-Waste",
		Tips:        []string{"Remove batteries if possible", "Wipe personal data from devices"},
	},
	{
		Name:        "battery",
		Instruction: "Take to special battery recycling drop-off location. Hazardous if disposed improperly.",
		Points:      10,
		Category:    "Hazardous",
		Tips:        []string{"Tape terminals of lithium batteries", "Store in cool, dry place until recycling"},
	},
	{
		Name:        "plastic bag",
		Instruction: "Take to grocery store recycling bin. Do not place in curbside recycling.",
		Points:      2,
		Category:    "Plastic",
		Tips:        []string{"Reuse when possible", "Collect multiple bags together for recycling"},
	},
	{
		Name:        "food waste",
		Instruction: "Compost if possible. Otherwise dispose in regular trash.",
		Points:      0,
		Category:    "Organic",
		Tips:        []string{"Start a compost bin", "Use a countertop compost collector"},
	},
}
