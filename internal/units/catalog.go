package units

import "strings"

// UnitID identifies one unit in the fixed catalog. The zero value is Invalid.
type UnitID int

// Catalog units. The declaration order is the listing order.
const (
	Invalid UnitID = iota
	Atmosphere
	Acre
	Angstrom
	Ampere
	AU
	Bar
	Becquerel
	Bit
	Board
	BTU
	Byte
	Calorie
	Candlepower
	Candela
	Carat
	Celsius
	CmH2O
	Cord
	Coulomb
	Curie
	Degree
	Day
	Dyne
	ElectronVolt
	Erg
	Exabit
	Exabyte
	Exbibyte
	Exbibit
	Fahrenheit
	Faraday
	Fathom
	FluidOunce
	Foot
	Footcandle
	Footlambert
	Gallon
	Gibibit
	Gibibyte
	Gigabit
	Gigabyte
	Gradian
	Grain
	Gramme
	GrammeForce
	Gray
	Hand
	Hectare
	Hour
	Horsepower
	Hundredweight
	Inch
	Joule
	Kelvin
	Rankine
	Kibibit
	Kibibyte
	Kilo
	Kilobit
	Kilobyte
	KMH
	Knot
	Lambert
	LightYear
	Litre
	LitrePer100km
	Load
	Lumen
	Lux
	Mebibit
	Mebibyte
	Megabit
	Megabyte
	Metre
	Mile
	Minute
	NauticalMile
	MmHg
	MPG
	MPH
	Newton
	Ounce
	Pascal
	Pebibit
	Pebibyte
	Petabit
	Petabyte
	Phot
	Pint
	Point
	Pound
	PoundForce
	PSI
	Quart
	Rad
	Radian
	Rem
	Revolution
	Roentgen
	Rutherford
	Second
	Sievert
	Steradian
	Stone
	Tebibit
	Tebibyte
	Terabit
	Terabyte
	Therm
	Ton
	TonTNT
	Tonne
	Torr
	TroyOunce
	TroyPound
	USAcre
	USFluidOunce
	USGallon
	USHundredweight
	USMPG
	USPint
	USQuart
	USTon
	Watt
	WoodCord
	Yard

	unitCount
)

// Definition holds the display data for one catalog unit.
type Definition struct {
	Name        string
	Plural      string
	Description string
	Synonyms    []string
}

// CatalogEntry is one row of the human-readable catalog listing.
type CatalogEntry struct {
	ID          UnitID   `json:"-"           yaml:"-"`
	Name        string   `json:"name"        yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Synonyms    []string `json:"synonyms"    yaml:"synonyms"`
}

//nolint:gochecknoglobals // Immutable catalog indexed by UnitID.
var definitions = [unitCount]Definition{
	Atmosphere:      {"atmosphere", "atmospheres", "atmosphere", []string{"atm", "atmospheres"}},
	Acre:            {"acre", "acres", "acre (international)", []string{"acres"}},
	Angstrom:        {"angstrom", "angstroms", "angstrom", []string{"angstroms", "ang", "angs"}},
	Ampere:          {"ampere", "amperes", "ampere", []string{"amperes", "amp", "amps", "A"}},
	AU:              {"AU", "AUs", "astronomical unit", []string{"au"}},
	Bar:             {"bar", "bars", "bar", []string{"bars"}},
	Becquerel:       {"becquerel", "becquerels", "becquerel", []string{"becquerels", "Bq", "Bqs"}},
	Bit:             {"bit", "bits", "bits", []string{"bits"}},
	Board:           {"board", "boards", "board (inch.foot)", []string{"boards", "bd"}},
	BTU:             {"BTU", "BTUs", "British Thermal Unit", []string{"btu"}},
	Byte:            {"byte", "bytes", "bytes", []string{"bytes", "b"}},
	Calorie:         {"calorie", "calories", "calorie", []string{"calories", "cal", "cals"}},
	Candlepower:     {"candlepower", "candlepower", "candlepower (new)", []string{"cp"}},
	Candela:         {"candela", "candela", "candela", []string{"candelas", "cd", "cds"}},
	Carat:           {"carat", "carats", "metric carat", []string{"carats", "ct", "cts"}},
	Celsius:         {"celsius", "celsius", "degrees celsius", []string{"centigrade", "C"}},
	CmH2O:           {"cmH20", "cmH20", "cm of water", []string{"cmwater", "cmh20"}},
	Cord:            {"cord", "cords", "cord (area)", []string{"cords"}},
	Coulomb:         {"coulomb", "coulombs", "coulomb", []string{"coulombs", "coul", "couls"}},
	Curie:           {"curie", "curies", "curie", []string{"curies", "ci"}},
	Degree:          {"degree", "degrees", "angular degree", []string{"degrees", "deg", "degs"}},
	Day:             {"day", "days", "day", []string{"days"}},
	Dyne:            {"dyne", "dynes", "dyne", []string{"dyn"}},
	ElectronVolt:    {"electron-volt", "electron-volts", "electron volt", []string{"electron-volts", "ev", "evs"}},
	Erg:             {"erg", "ergs", "erg", []string{"ergs"}},
	Exabit:          {"exabit", "exabits", "exabits", []string{"exabits", "ebit", "ebits"}},
	Exabyte:         {"exabyte", "exabytes", "exabytes", []string{"exabytes", "eb"}},
	Exbibyte:        {"exbibyte", "exbibytes", "exbibytes", []string{"exbibytes", "eib"}},
	Exbibit:         {"exbibit", "exbibits", "exbibits", []string{"exbibits", "eibit", "eibits"}},
	Fahrenheit:      {"fahrenheit", "fahrenheit", "degrees fahrenheit", []string{"fahr", "F"}},
	Faraday:         {"faraday", "faradays", "faraday", []string{"faradays"}},
	Fathom:          {"fathom", "fathoms", "fathom", []string{"fathoms", "fm", "fms"}},
	FluidOunce:      {"fluid-ounce", "fluid-ounces", "fluid ounce", []string{"fluid-ounces", "floz"}},
	Foot:            {"foot", "feet", "imperial foot", []string{"feet", "ft"}},
	Footcandle:      {"footcandle", "footcandles", "footcandle", []string{"footcandles", "fc"}},
	Footlambert:     {"footlambert", "footlamberts", "footlambert", []string{"footlamberts", "fL"}},
	Gallon:          {"gallon", "gallons", "imperial gallon", []string{"gallons", "gal"}},
	Gibibit:         {"gibibit", "gibibits", "gibibits", []string{"gibibits", "gibit", "gibits"}},
	Gibibyte:        {"gibibyte", "gibibytes", "gibibytes", []string{"gibibytes", "gib"}},
	Gigabit:         {"gigabit", "gigabits", "gigabits", []string{"gigabits", "gbit", "gbits"}},
	Gigabyte:        {"gigabyte", "gigabytes", "gigabytes", []string{"gigabytes", "gb"}},
	Gradian:         {"gradian", "gradians", "angular gradian", []string{"gradians", "grad", "grads"}},
	Grain:           {"grain", "grains", "grain", []string{"grains", "gr"}},
	Gramme:          {"gramme", "grammes", "gramme", []string{"grammes", "gram", "grams", "g", "gms"}},
	GrammeForce:     {"gramme-force", "grammes-force", "gramme-force", []string{"gforce", "gf", "gramforce"}},
	Gray:            {"gray", "gray", "gray", []string{"grays", "gy", "gys"}},
	Hand:            {"hand", "hands", "hand (equestrian)", []string{"hands"}},
	Hectare:         {"hectare", "hectares", "hectare", []string{"ha", "hectares"}},
	Hour:            {"hour", "hours", "hour", []string{"hours", "h", "hr", "hrs"}},
	Horsepower:      {"horsepower", "horsepower", "horsepower (metric)", []string{"hp"}},
	Hundredweight:   {"hundredweight", "hundredweight", "impl. hundredweight", []string{"cwt"}},
	Inch:            {"inch", "inches", "imperial inch", []string{"inches", "in"}},
	Joule:           {"joule", "joules", "joule", []string{"joules", "j", "J"}},
	Kelvin:          {"kelvin", "kelvin", "kelvin", []string{"kelvins", "k", "K"}},
	Rankine:         {"rankine", "rankine", "rankine", []string{"rankines", "ra", "Ra"}},
	Kibibit:         {"kibibit", "kibibits", "kibibits", []string{"kibibits", "kibit", "kibits"}},
	Kibibyte:        {"kibibyte", "kibibytes", "kibibytes", []string{"kibibytes", "kib"}},
	Kilo:            {"kilo", "kilos", "kilogramme", []string{"kilos"}},
	Kilobit:         {"kilobit", "kilobits", "kilobits", []string{"kilobits", "kbit", "kbits"}},
	Kilobyte:        {"kilobyte", "kilobytes", "kilobytes", []string{"kilobytes", "kb"}},
	KMH:             {"kmh", "kmh", "kilometres per hour", []string{"kmh"}},
	Knot:            {"knot", "knots", "nautical knots", []string{"knots", "kt", "kts"}},
	Lambert:         {"lambert", "lamberts", "lambert", []string{"lamberts", "lamb", "lambs"}},
	LightYear:       {"light-year", "light-years", "light-year", []string{"lightyear", "lightyears", "ly", "lys"}},
	Litre:           {"litre", "litres", "liter", []string{"liter", "liters", "litres", "l"}},
	LitrePer100km:   {"litreper100km", "litresper100km", "litres per 100 km", []string{"l100k", "lhk"}},
	Load:            {"load", "loads", "load", []string{"loads"}},
	Lumen:           {"lumen", "lumens", "lumen", []string{"lumens", "lm"}},
	Lux:             {"lux", "lux", "lux", []string{"lx"}},
	Mebibit:         {"mebibit", "mebibits", "mebibits", []string{"mebibits", "mibit", "mibits"}},
	Mebibyte:        {"mebibyte", "mebibytes", "mebibytes", []string{"mebibytes", "mib"}},
	Megabit:         {"megabit", "megabits", "megabits", []string{"megabits", "mbit", "mbits"}},
	Megabyte:        {"megabyte", "megabytes", "megabytes", []string{"megabytes", "mb"}},
	Metre:           {"metre", "metres", "metre", []string{"meter", "meters", "metres", "m"}},
	Mile:            {"mile", "miles", "statute mile", []string{"miles", "mi"}},
	Minute:          {"minute", "minutes", "minute", []string{"minutes", "min", "mins"}},
	NauticalMile:    {"nautical-mile", "nautical-miles", "nautical mile", []string{"nautical mile", "nmi", "NM"}},
	MmHg:            {"mmHg", "mmHg", "mm of mercury", []string{"mmhg"}},
	MPG:             {"mpg", "mpg", "miles per gallon (UK)", []string{"mpg"}},
	MPH:             {"mph", "mph", "miles per hour", []string{"mph"}},
	Newton:          {"newton", "newtons", "newton", []string{"newtons", "N"}},
	Ounce:           {"ounce", "ounces", "avoirdupois ounce", []string{"ounces", "oz"}},
	Pascal:          {"pascal", "pascals", "pascal (N/m2)", []string{"pascals", "Pa"}},
	Pebibit:         {"pebibit", "pebibits", "pebibits", []string{"pebibits", "pibit", "pibits"}},
	Pebibyte:        {"pebibyte", "pebibytes", "pebibytes", []string{"pebibytes", "pib"}},
	Petabit:         {"petabit", "petabits", "petabits", []string{"petabits", "pbit", "pbits"}},
	Petabyte:        {"petabyte", "petabytes", "petabytes", []string{"petabytes", "pb"}},
	Phot:            {"phot", "phots", "phot", []string{"phots", "ph"}},
	Pint:            {"pint", "pints", "imperial pint", []string{"pints", "pt", "pts"}},
	Point:           {"point", "points", "type point (US, Eng)", []string{"points"}},
	Pound:           {"pound", "pounds", "imperial pound", []string{"pounds", "lb", "lbs"}},
	PoundForce:      {"pound-force", "pounds-force", "imperial pound-force", []string{"poundforce", "poundsforce", "pounds-force", "lbf"}},
	PSI:             {"psi", "psi", "pounds per sq inch", []string{"PSI"}},
	Quart:           {"quart", "quarts", "imperial quart", []string{"quarts", "qt", "qts"}},
	Rad:             {"rad", "rads", "rad", []string{"rads"}},
	Radian:          {"radian", "radians", "angular radian", []string{"radians"}},
	Rem:             {"REM", "REM", "Roentgen equiv. man", []string{"REMS", "rem", "rems"}},
	Revolution:      {"revolution", "revolutions", "angular revolution", []string{"revolutions", "rev", "revs"}},
	Roentgen:        {"roentgen", "roentgens", "roentgen", []string{"roentgens", "R"}},
	Rutherford:      {"rutherford", "rutherfords", "rutherford", []string{"rutherfords", "rd", "rds"}},
	Second:          {"second", "seconds", "second", []string{"seconds", "sec", "secs", "s"}},
	Sievert:         {"sievert", "sieverts", "sievert", []string{"sieverts", "Sv", "Svs"}},
	Steradian:       {"steradian", "steradians", "solid angle", []string{"steradians", "sterads"}},
	Stone:           {"stone", "stones", "imperial stone", []string{"stones", "st"}},
	Tebibit:         {"tebibit", "tebibits", "tebibits", []string{"tebibits", "tibit", "tibits"}},
	Tebibyte:        {"tebibyte", "tebibytes", "tebibytes", []string{"tebibytes", "tib"}},
	Terabit:         {"terabit", "terabits", "terabits", []string{"terabits", "tbit", "tbits"}},
	Terabyte:        {"terabyte", "terabytes", "terabytes", []string{"terabytes", "tb"}},
	Therm:           {"therm", "therms", "therm", []string{"therms"}},
	Ton:             {"ton", "tons", "imperial (long) ton", []string{"tons"}},
	TonTNT:          {"ton-tnt", "tons-tnt", "ton of TNT (energy)", []string{"tons-tnt", "ttnt"}},
	Tonne:           {"tonne", "tonnes", "metric tonne", []string{"tonnes"}},
	Torr:            {"torr", "torrs", "torr", []string{"torrs"}},
	TroyOunce:       {"troy-ounce", "troy-ounces", "troy ounce", []string{"troy-ounces", "troy ounce", "troy ounces", "ozt"}},
	TroyPound:       {"troy-pound", "troy-pounds", "troy pound", []string{"troy-pounds", "troy pound", "troy pounds", "lbt"}},
	USAcre:          {"usacre", "usacres", "US acre", []string{"usacres"}},
	USFluidOunce:    {"usfluid-ounce", "usfluid-ounces", "US fluid ounce", []string{"usfluid-ounces", "usfloz"}},
	USGallon:        {"usgallon", "usgallons", "US gallon", []string{"usgallons", "usgal", "usgals"}},
	USHundredweight: {"ushundredweight", "ushundredweight", "US hundredweight", []string{"uscwt"}},
	USMPG:           {"usmpg", "usmpg", "miles per gallon (US)", []string{"usmpg"}},
	USPint:          {"uspint", "uspints", "US pint", []string{"uspints", "uspt", "uspts"}},
	USQuart:         {"usquart", "usquarts", "US quart", []string{"usquarts", "usqt", "usqts"}},
	USTon:           {"uston", "ustons", "US (short) ton", []string{"ustons"}},
	Watt:            {"watt", "watts", "watt", []string{"watts", "w"}},
	WoodCord:        {"wood-cord", "wood-cords", "wood cord (volume)", []string{"woodcord", "woodcords", "wood-cords"}},
	Yard:            {"yard", "yards", "imperial yard", []string{"yards", "yd", "yds"}},
}

// Valid reports whether u names a catalog unit.
func (u UnitID) Valid() bool {
	return u > Invalid && u < unitCount
}

// Name returns the singular display name, or "?" for an unknown id.
func (u UnitID) Name() string {
	if !u.Valid() {
		return "?"
	}
	return definitions[u].Name
}

// PluralName returns the plural display name, or "?" for an unknown id.
func (u UnitID) PluralName() string {
	if !u.Valid() {
		return "?"
	}
	return definitions[u].Plural
}

// String implements fmt.Stringer.
func (u UnitID) String() string {
	return u.Name()
}

// Definition returns the catalog data for u.
func (u UnitID) Definition() (Definition, bool) {
	if !u.Valid() {
		return Definition{}, false
	}
	return definitions[u], true
}

// IsTemperature reports whether u is one of the four absolute temperature scales.
func (u UnitID) IsTemperature() bool {
	switch u {
	case Celsius, Fahrenheit, Kelvin, Rankine:
		return true
	default:
		return false
	}
}

// Matches reports whether name equals the unit's long name or one of its
// synonyms, ignoring case.
func (d Definition) Matches(name string) bool {
	if strings.EqualFold(name, d.Name) {
		return true
	}
	for _, s := range d.Synonyms {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// ListCatalog returns every catalog unit in listing order.
func ListCatalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, int(unitCount)-1)
	for id := Invalid + 1; id < unitCount; id++ {
		d := definitions[id]
		synonyms := make([]string, len(d.Synonyms))
		copy(synonyms, d.Synonyms)
		entries = append(entries, CatalogEntry{
			ID:          id,
			Name:        d.Name,
			Description: d.Description,
			Synonyms:    synonyms,
		})
	}
	return entries
}

// UnitCount returns the number of units in the catalog.
func UnitCount() int {
	return int(unitCount) - 1
}
