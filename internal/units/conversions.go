package units

import "math"

// Conversion constants.
const (
	inchToMetre = 0.0254

	// newtonSlope expresses one newton in the gramme-based base vector
	// (1 N = 1000 g.m.s^-2).
	newtonSlope = 1000.0

	// lumensPerWatt is the luminous efficacy used for photometric units.
	lumensPerWatt = 683.0
)

// conversion reduces one unit at exponent 1 to base units. slope is the
// number of base-vector units in one of the unit.
type conversion struct {
	base  []Term
	slope float64
}

func (c conversion) defined() bool {
	return c.slope > 0
}

// bt is shorthand for an unprefixed base term.
func bt(u UnitID, exponent int) Term {
	return Term{Unit: u, Exponent: exponent}
}

// Base vectors shared by several families of units.
//
//nolint:gochecknoglobals // Immutable conversion data.
var (
	massBase         = []Term{bt(Gramme, 1)}
	lengthBase       = []Term{bt(Metre, 1)}
	areaBase         = []Term{bt(Metre, 2)}
	volumeBase       = []Term{bt(Metre, 3)}
	timeBase         = []Term{bt(Second, 1)}
	forceBase        = []Term{bt(Gramme, 1), bt(Metre, 1), bt(Second, -2)}
	pressureBase     = []Term{bt(Gramme, 1), bt(Metre, -1), bt(Second, -2)}
	energyBase       = []Term{bt(Gramme, 1), bt(Metre, 2), bt(Second, -2)}
	powerBase        = []Term{bt(Gramme, 1), bt(Metre, 2), bt(Second, -3)}
	velocityBase     = []Term{bt(Metre, 1), bt(Second, -1)}
	angleBase        = []Term{bt(Radian, 1)}
	chargeBase       = []Term{bt(Ampere, 1), bt(Second, 1)}
	activityBase     = []Term{bt(Second, -1)}
	exposureBase     = []Term{bt(Ampere, 1), bt(Second, 1), bt(Gramme, -1)}
	doseBase         = []Term{bt(Metre, 2), bt(Second, -2)}
	intensityBase    = []Term{bt(Gramme, 1), bt(Metre, 2), bt(Second, -3), bt(Steradian, -1)}
	luminanceBase    = []Term{bt(Gramme, 1), bt(Second, -3), bt(Steradian, -1)}
	illuminanceBase  = []Term{bt(Gramme, 1), bt(Second, -3)}
	storageBase      = []Term{bt(Byte, 1)}
	temperatureBase  = []Term{bt(Fahrenheit, 1)}
	fuelEconomyBase  = []Term{bt(Metre, -2)}
	fuelUsageBase    = []Term{bt(Metre, 2)}
	solidAngleBase   = []Term{bt(Steradian, 1)}
	currentBase      = []Term{bt(Ampere, 1)}
	luminousFluxBase = powerBase
)

// conversions is indexed by UnitID. Temperature entries are used only when a
// temperature appears inside a rate; absolute temperatures go through
// convertTemperature.
//
//nolint:gochecknoglobals // Immutable conversion data.
var conversions = [unitCount]conversion{
	// Temperature (rates only).
	Celsius:    {temperatureBase, 1.8},
	Fahrenheit: {temperatureBase, 1},
	Kelvin:     {temperatureBase, 1.8},
	Rankine:    {temperatureBase, 1},

	// Mass.
	Carat:           {massBase, 0.2},
	Grain:           {massBase, 64.79891 / 1000},
	Gramme:          {massBase, 1},
	Hundredweight:   {massBase, 50802.34544},
	Ounce:           {massBase, 28.349523125},
	Pound:           {massBase, 453.59237},
	Stone:           {massBase, 453.59237 * 14},
	Tonne:           {massBase, 1e6},
	Ton:             {massBase, 1016046.9088},
	USTon:           {massBase, 907184.74},
	Kilo:            {massBase, 1000},
	TroyPound:       {massBase, 373.2417216},
	TroyOunce:       {massBase, 31.1034768},
	USHundredweight: {massBase, 45359.237},

	// Length.
	AU:           {lengthBase, 149597870700.0},
	Angstrom:     {lengthBase, 1 / 1e10},
	Fathom:       {lengthBase, 1.8288},
	Foot:         {lengthBase, inchToMetre * 12},
	Hand:         {lengthBase, 4 * inchToMetre},
	Inch:         {lengthBase, inchToMetre},
	LightYear:    {lengthBase, 9.4607304725808e15},
	Metre:        {lengthBase, 1},
	NauticalMile: {lengthBase, 1853.184},
	Point:        {lengthBase, 0.000351450},
	Mile:         {lengthBase, inchToMetre * 36 * 1760},
	Yard:         {lengthBase, inchToMetre * 36},

	// Volume.
	FluidOunce:   {volumeBase, 2.84131e-05},
	Gallon:       {volumeBase, 4.54609 / 1000.0},
	Litre:        {volumeBase, 1.0 / 1000.0},
	Load:         {volumeBase, 1.4158423296},
	Pint:         {volumeBase, 568.26125 / 1e6},
	Quart:        {volumeBase, 2 * 568.26125 / 1e6},
	USFluidOunce: {volumeBase, 2.957353e-05},
	USGallon:     {volumeBase, 3.785411784 / 1000.0},
	USPint:       {volumeBase, 473.176473 / 1e6},
	USQuart:      {volumeBase, 2 * 473.176473 / 1e6},
	WoodCord:     {volumeBase, 3.62456},

	// Area.
	Acre:    {areaBase, 4046.8564224},
	Board:   {areaBase, 7.74192 / 1000},
	Cord:    {areaBase, 1.48644864},
	Hectare: {areaBase, 10000},
	USAcre:  {areaBase, 4046.87261},

	// Time.
	Second: {timeBase, 1},
	Hour:   {timeBase, 3600},
	Minute: {timeBase, 60},
	Day:    {timeBase, 24 * 3600},

	// Force.
	Newton:      {forceBase, newtonSlope},
	PoundForce:  {forceBase, 4.4482216152605 * newtonSlope},
	GrammeForce: {forceBase, 9.80665 / 1000.0 * newtonSlope},
	Dyne:        {forceBase, 1 / 1e5 * newtonSlope},

	// Pressure.
	Pascal:     {pressureBase, newtonSlope},
	Bar:        {pressureBase, 100000 * newtonSlope},
	CmH2O:      {pressureBase, 98.0638 * newtonSlope},
	Atmosphere: {pressureBase, 101325 * newtonSlope},
	PSI:        {pressureBase, 6894.757 * newtonSlope},
	MmHg:       {pressureBase, 133.3224 * newtonSlope},
	Torr:       {pressureBase, 133.322368 * newtonSlope},

	// Energy.
	BTU:          {energyBase, 1.05505585262e3 * newtonSlope},
	Calorie:      {energyBase, 4.1819 * newtonSlope},
	ElectronVolt: {energyBase, 1.602177 / 1e19 * newtonSlope},
	Erg:          {energyBase, 1 / 1e7 * newtonSlope},
	Joule:        {energyBase, newtonSlope},
	TonTNT:       {energyBase, 4.184e9 * newtonSlope},
	Therm:        {energyBase, 105.505585262e6 * newtonSlope},

	// Power.
	Watt:       {powerBase, newtonSlope},
	Horsepower: {powerBase, 735.49875 * newtonSlope},

	// Fuel economy. Distance per volume reduces to m^-2, volume per
	// distance to m^2, so the two families are inverses of each other.
	MPG:           {fuelEconomyBase, 354006.1899},
	USMPG:         {fuelEconomyBase, 425143.7074302721},
	LitrePer100km: {fuelUsageBase, 1e-8},

	// Velocity.
	KMH:  {velocityBase, 1 / 3.6},
	MPH:  {velocityBase, 0.44704},
	Knot: {velocityBase, 0.514773},

	// Angles.
	Steradian:  {solidAngleBase, 1},
	Radian:     {angleBase, 1},
	Degree:     {angleBase, 2 * math.Pi / 360.0},
	Gradian:    {angleBase, 2 * math.Pi / 400.0},
	Revolution: {angleBase, 2 * math.Pi},

	// Current and charge.
	Ampere:  {currentBase, 1},
	Coulomb: {chargeBase, 1},
	Faraday: {chargeBase, 9.64853399e4},

	// Radioactivity.
	Becquerel:  {activityBase, 1},
	Curie:      {activityBase, 3.7e10},
	Rutherford: {activityBase, 1e6},
	Roentgen:   {exposureBase, 2.58e-4 / 1000},
	Gray:       {doseBase, 1},
	Rad:        {doseBase, 1.0 / 100},
	Sievert:    {doseBase, 1},
	Rem:        {doseBase, 1.0 / 100},

	// Photometry.
	Candela:     {intensityBase, newtonSlope / lumensPerWatt},
	Candlepower: {intensityBase, newtonSlope / lumensPerWatt},
	Lambert:     {luminanceBase, 3183.0988618 * newtonSlope / lumensPerWatt},
	Footlambert: {luminanceBase, 3.4262590996 * newtonSlope / lumensPerWatt},
	Lumen:       {luminousFluxBase, newtonSlope / lumensPerWatt},
	Footcandle:  {illuminanceBase, 10.763910417 * newtonSlope / lumensPerWatt},
	Lux:         {illuminanceBase, newtonSlope / lumensPerWatt},
	Phot:        {illuminanceBase, 1e4 * newtonSlope / lumensPerWatt},

	// Digital storage, SI.
	Byte:     {storageBase, 1},
	Kilobyte: {storageBase, 1e3},
	Megabyte: {storageBase, 1e6},
	Gigabyte: {storageBase, 1e9},
	Terabyte: {storageBase, 1e12},
	Petabyte: {storageBase, 1e15},
	Exabyte:  {storageBase, 1e18},

	// Digital storage, IEC.
	Kibibyte: {storageBase, 1 << 10},
	Mebibyte: {storageBase, 1 << 20},
	Gibibyte: {storageBase, 1 << 30},
	Tebibyte: {storageBase, 1 << 40},
	Pebibyte: {storageBase, 1 << 50},
	Exbibyte: {storageBase, 1 << 60},

	// Bits, SI.
	Bit:     {storageBase, 0.125},
	Kilobit: {storageBase, 125},
	Megabit: {storageBase, 125e3},
	Gigabit: {storageBase, 125e6},
	Terabit: {storageBase, 125e9},
	Petabit: {storageBase, 125e12},
	Exabit:  {storageBase, 125e15},

	// Bits, IEC.
	Kibibit: {storageBase, 1 << 7},
	Mebibit: {storageBase, 1 << 17},
	Gibibit: {storageBase, 1 << 27},
	Tebibit: {storageBase, 1 << 37},
	Pebibit: {storageBase, 1 << 47},
	Exbibit: {storageBase, 1 << 57},
}

// conversionFor returns the exponent-1 conversion entry for u.
func conversionFor(u UnitID) (conversion, bool) {
	if !u.Valid() {
		return conversion{}, false
	}
	c := conversions[u]
	return c, c.defined()
}
