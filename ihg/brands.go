package ihg

// brandNames maps the four character brand codes used by the IHG API to
// their display names. Unknown codes are passed through with no name.
var brandNames = map[string]string{
	"ICON": "InterContinental Hotels & Resorts",
	"RGNT": "Regent Hotels & Resorts",
	"SIXS": "Six Senses Hotels Resorts Spas",
	"VIGN": "Vignette Collection",
	"KIMP": "Kimpton Hotels & Restaurants",
	"INDG": "Hotel Indigo",
	"EVEN": "EVEN Hotels",
	"CRWN": "Crowne Plaza Hotels & Resorts",
	"HUAL": "HUALUXE Hotels & Resorts",
	"VOCO": "voco Hotels",
	"HOLI": "Holiday Inn",
	"HIEX": "Holiday Inn Express",
	"HICV": "Holiday Inn Club Vacations",
	"AVID": "avid hotels",
	"ATWL": "Atwell Suites",
	"STAY": "Staybridge Suites",
	"CNDL": "Candlewood Suites",
	"GRNR": "Garner Hotels",
}

// LookupBrand returns the display name for a brand code. The second return
// value reports whether the code is known.
func LookupBrand(code string) (string, bool) {
	name, ok := brandNames[code]
	return name, ok
}
