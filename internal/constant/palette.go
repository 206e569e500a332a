package constant

// ProjectPalette is the fixed set of colors a project may be tinted with.
// A color is unique per owner; the service layer enforces uniqueness.
var ProjectPalette = []string{
	"#ef4444",
	"#f97316",
	"#eab308",
	"#22c55e",
	"#06b6d4",
	"#3b82f6",
	"#8b5cf6",
	"#ec4899",
}
