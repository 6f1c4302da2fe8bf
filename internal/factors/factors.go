package factors

import "sort"

// The Barra USSLOWL factor set. This list is fixed per model version and is
// shared by the exposure and covariance sources - both must honor it
// identically. It is never discovered at runtime from either source.
//
// Exposure matrix columns and factor covariance rows/columns are always
// ordered by All(), so the two stay aligned by construction.

var styleFactors = []string{
	"USSLOWL_BETA",
	"USSLOWL_COUNTRY",
	"USSLOWL_DIVYILD",
	"USSLOWL_EARNQLTY",
	"USSLOWL_EARNYILD",
	"USSLOWL_GROWTH",
	"USSLOWL_LEVERAGE",
	"USSLOWL_LIQUIDTY",
	"USSLOWL_LTREVRSL",
	"USSLOWL_MGMTQLTY",
	"USSLOWL_MIDCAP",
	"USSLOWL_MOMENTUM",
	"USSLOWL_PROFIT",
	"USSLOWL_PROSPECT",
	"USSLOWL_SIZE",
	"USSLOWL_VALUE",
}

var industryFactors = []string{
	"USSLOWL_AERODEF",
	"USSLOWL_AIRLINES",
	"USSLOWL_ALUMSTEL",
	"USSLOWL_APPAREL",
	"USSLOWL_AUTO",
	"USSLOWL_BANKS",
	"USSLOWL_BEVTOB",
	"USSLOWL_BIOLIFE",
	"USSLOWL_BLDGPROD",
	"USSLOWL_CHEM",
	"USSLOWL_CNSTENG",
	"USSLOWL_CNSTMACH",
	"USSLOWL_CNSTMATL",
	"USSLOWL_COMMEQP",
	"USSLOWL_COMPELEC",
	"USSLOWL_COMSVCS",
	"USSLOWL_CONGLOM",
	"USSLOWL_CONTAINR",
	"USSLOWL_DISTRIB",
	"USSLOWL_DIVFIN",
	"USSLOWL_ELECEQP",
	"USSLOWL_ELECUTIL",
	"USSLOWL_FOODPROD",
	"USSLOWL_FOODRET",
	"USSLOWL_GASUTIL",
	"USSLOWL_HLTHEQP",
	"USSLOWL_HLTHSVCS",
	"USSLOWL_HOMEBLDG",
	"USSLOWL_HOUSEDUR",
	"USSLOWL_INDMACH",
	"USSLOWL_INSURNCE",
	"USSLOWL_INTERNET",
	"USSLOWL_LEISPROD",
	"USSLOWL_LEISSVCS",
	"USSLOWL_LIFEINS",
	"USSLOWL_MEDIA",
	"USSLOWL_MGDHLTH",
	"USSLOWL_MULTUTIL",
	"USSLOWL_NETRET",
	"USSLOWL_OILGSCON",
	"USSLOWL_OILGSDRL",
	"USSLOWL_OILGSEQP",
	"USSLOWL_OILGSEXP",
	"USSLOWL_PAPER",
	"USSLOWL_PHARMA",
	"USSLOWL_PRECMTLS",
	"USSLOWL_PSNLPROD",
	"USSLOWL_REALEST",
	"USSLOWL_RESTAUR",
	"USSLOWL_RESVOL",
	"USSLOWL_ROADRAIL",
	"USSLOWL_SEMICOND",
	"USSLOWL_SEMIEQP",
	"USSLOWL_SOFTWARE",
	"USSLOWL_SPLTYRET",
	"USSLOWL_SPTYCHEM",
	"USSLOWL_SPTYSTOR",
	"USSLOWL_TELECOM",
	"USSLOWL_TRADECO",
	"USSLOWL_TRANSPRT",
	"USSLOWL_WIRELESS",
}

var all = func() []string {
	combined := append(append([]string{}, styleFactors...), industryFactors...)
	sort.Strings(combined)
	return combined
}()

// All returns every factor id in the model, sorted ascending. Callers get a
// copy; the underlying list is immutable.
func All() []string {
	return append([]string{}, all...)
}

// Style returns the style factor ids (continuous exposures), sorted ascending.
func Style() []string {
	out := append([]string{}, styleFactors...)
	sort.Strings(out)
	return out
}

// Industry returns the industry/sector factor ids (indicator exposures),
// sorted ascending.
func Industry() []string {
	out := append([]string{}, industryFactors...)
	sort.Strings(out)
	return out
}

// Count is the number of factors in the model.
func Count() int {
	return len(all)
}

// IsKnown reports whether id belongs to the factor set.
func IsKnown(id string) bool {
	i := sort.SearchStrings(all, id)
	return i < len(all) && all[i] == id
}
