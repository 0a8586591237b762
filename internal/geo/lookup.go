// Package geo resolves contract location identifiers to map
// coordinates. The table covers the NUTS-style UK region strings the
// tender source emits; anything else simply has no map position.
package geo

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

var ukRegions = map[string]Coordinates{
	"UKH1 - East Anglia":                     {52.2000, 0.1313},
	"UKG21 - Telford and Wrekin":             {52.6784, -2.4469},
	"UK - United Kingdom":                    {55.3781, -3.4360},
	"UKC1 - Tees Valley and Durham":          {54.5700, -1.3200},
	"UKC2 - Northumberland and Tyne and Wear": {54.9700, -1.6100},
	"UKD1 - Cumbria":                         {54.4600, -2.7400},
	"UKD3 - Greater Manchester":              {53.4808, -2.2426},
	"UKD6 - Cheshire":                        {53.2000, -2.5200},
	"UKE1 - East Yorkshire and Northern Lincolnshire":     {53.7600, -0.3300},
	"UKE4 - West Yorkshire":                               {53.8000, -1.5500},
	"UKF1 - Derbyshire and Nottinghamshire":               {53.1000, -1.5500},
	"UKF2 - Leicestershire, Rutland and Northamptonshire": {52.6369, -1.1398},
	"UKG1 - Herefordshire, Worcestershire and Warwickshire": {52.1900, -2.2200},
	"UKH2 - Bedfordshire and Hertfordshire":                 {51.7500, -0.4100},
	"UKH3 - Essex":                        {51.7340, 0.4700},
	"UKI3 - Inner London":                 {51.5074, -0.1278},
	"UKJ1 - Berkshire, Buckinghamshire and Oxfordshire": {51.7500, -1.2500},
	"UKJ2 - Surrey, East and West Sussex":               {51.0500, -0.3200},
	"UKJ3 - Hampshire and Isle of Wight":                {50.9000, -1.4000},
	"UKK1 - Gloucestershire, Wiltshire and Bath/Bristol area": {51.4500, -2.5800},
	"UKK4 - Devon":                    {50.7100, -3.5300},
	"UKL1 - West Wales and The Valleys": {51.7700, -3.7800},
	"UKL2 - East Wales":                 {52.3200, -3.8600},
	"UKM6 - Highlands and Islands":      {57.4800, -5.0700},
	"UKN0 - Northern Ireland":           {54.7877, -6.4923},
}

// Lookup resolves a location identifier by exact string match. A miss
// is not an error; the row just has no map position. No case or
// whitespace normalization is applied.
func Lookup(locationID string) (Coordinates, bool) {
	c, ok := ukRegions[locationID]
	return c, ok
}
