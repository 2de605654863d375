package vehicle

// chassisByModelCode maps manufacturer model codes to their chassis/series
// family for vehicles whose feed row carries no body group. Maintained by
// hand; extend as new series enter the feed.
var chassisByModelCode = map[string]string{
	"21CF": "F40",
	"28EM": "G20",
	"31AM": "G21",
	"5A51": "G26",
	"11CF": "G42",
	"21EM": "G60",
	"9A05": "G01",
	"9B05": "G02",
	"21FH": "G05",
	"31FH": "G07",
	"11DW": "U06",
	"41DW": "U11",
}

// FallbackChassis returns the chassis family for a model code, or the empty
// string when the code is unknown.
func FallbackChassis(modelCode string) string {
	return chassisByModelCode[modelCode]
}
