package weather

// Icon is the glyph category the view renders for a condition code.
type Icon string

const (
	IconClear  Icon = "clear"
	IconCloudy Icon = "cloudy"
	IconRainy  Icon = "rainy"
	IconSnowy  Icon = "snowy"
)

// iconByCode maps OpenWeather icon code prefixes (day/night suffix stripped)
// to glyph categories.
var iconByCode = map[string]Icon{
	"01": IconClear,
	"02": IconCloudy,
	"03": IconCloudy,
	"04": IconCloudy,
	"09": IconRainy,
	"10": IconRainy,
	"11": IconRainy,
	"13": IconSnowy,
	"50": IconCloudy,
}

// IconFor returns the glyph category for a provider condition code.
// Unknown or empty codes fall back to clear.
func IconFor(code string) Icon {
	if len(code) >= 2 {
		if icon, ok := iconByCode[code[:2]]; ok {
			return icon
		}
	}
	return IconClear
}
