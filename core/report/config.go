package report

import "github.com/RaoulBonsso/GM/core"

// RGB is a color triple.
type RGB struct {
	R, G, B int
}

var (
	white     = RGB{255, 255, 255}
	paleBlue  = RGB{250, 250, 255}
	paleLilac = RGB{245, 245, 255}
	paleGrey  = RGB{245, 245, 245}
	ruleGrey  = RGB{100, 100, 100}
)

type (
	Fonts struct {
		Family   string
		Title    float64
		Subtitle float64
		Section  float64
		Normal   float64
		Small    float64
	}

	TableStyle struct {
		HeadFill    RGB
		HeadText    RGB
		AltRow      RGB
		Border      RGB
		FontSize    float64
		CellPadding float64
	}

	Institution struct {
		Name    string
		Address string
		Phone   string
		Email   string
	}

	// Config holds every style and layout constant of the generated documents.
	// Lengths are in millimetres, font sizes in points.
	Config struct {
		HeaderColor    RGB
		SecondaryColor RGB
		AccentColor    RGB
		TextColor      RGB
		LightTextColor RGB

		Fonts      Fonts
		Margin     float64
		LineHeight float64

		BodyTop       float64 // first content line of the first page, below the title box
		PageTop       float64 // first content line of continuation pages
		FooterReserve float64 // content never goes below height - FooterReserve
		SectionGap    float64
		WrapAt        int // detail values longer than this continue on a second line

		Table  TableStyle
		School Institution
	}
)

// DefaultConfig returns the house style.
func DefaultConfig() Config {
	return Config{
		HeaderColor:    RGB{66, 83, 175},
		SecondaryColor: RGB{100, 116, 200},
		AccentColor:    RGB{142, 68, 173},
		TextColor:      RGB{50, 50, 50},
		LightTextColor: RGB{100, 100, 100},
		Fonts: Fonts{
			Family:   "Helvetica",
			Title:    22,
			Subtitle: 16,
			Section:  14,
			Normal:   10,
			Small:    8,
		},
		Margin:        15,
		LineHeight:    7,
		BodyTop:       80,
		PageTop:       20,
		FooterReserve: 30,
		SectionGap:    8,
		WrapAt:        30,
		Table: TableStyle{
			HeadFill:    RGB{66, 83, 175},
			HeadText:    white,
			AltRow:      RGB{240, 240, 255},
			Border:      RGB{200, 200, 200},
			FontSize:    8,
			CellPadding: 2,
		},
		School: Institution{
			Name:    "École Primaire Excellence",
			Address: "Quartier Almamya, Kaloum, Conakry",
			Phone:   "+224 620 12 34 56",
			Email:   "contact@ecole-excellence.gn",
		},
	}
}

// WithSchool returns a copy of c printing the given institution identity.
// Empty fields keep the current value.
func (c Config) WithSchool(s core.SchoolConfig) Config {
	if s.Name != "" {
		c.School.Name = s.Name
	}
	if s.Address != "" {
		c.School.Address = s.Address
	}
	if s.Phone != "" {
		c.School.Phone = s.Phone
	}
	if s.Email != "" {
		c.School.Email = s.Email
	}
	return c
}
