package transform

// gradientPalette backs the card backgrounds on the storefront. Records
// pick a gradient by their sequential position in the run, so re-importing
// the same feed yields the same assignment.
var gradientPalette = []string{
	"linear-gradient(135deg, #E8E8E8 0%, #F5F5F5 100%)",
	"linear-gradient(135deg, #D4E8E4 0%, #E8F4F2 100%)",
	"linear-gradient(135deg, #F5E6D3 0%, #FFF5E8 100%)",
	"linear-gradient(135deg, #D8E8F0 0%, #E8F4F8 100%)",
	"linear-gradient(135deg, #E8D8E8 0%, #F4E8F4 100%)",
	"linear-gradient(135deg, #FFE5E5 0%, #FFF5F5 100%)",
}

// Gradient returns the palette entry for the given import position.
func Gradient(index int) string {
	return gradientPalette[index%len(gradientPalette)]
}
