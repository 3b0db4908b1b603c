package skills

// DefaultWeakWords is the curated blocklist of role-title filler words and
// US city names that show up in job titles but carry no skill signal.
// Overridable through Config for callers with a different noise profile.
var DefaultWeakWords = []string{
	"senior", "junior", "full", "stack", "software", "engineer", "developer",
	"account", "sector", "public", "solutions", "customer", "manager",
	"technology", "specialist", "executive", "graduate", "intern", "prompt", "citi",
	"commodities", "remote", "application", "computer", "(typescript",
	"houston", "austin", "chicago", "new york", "nyc", "boston",
	"san francisco", "sf", "la", "los angeles", "dallas", "denver", "seattle",
	"washington", "atlanta", "miami", "phoenix", "portland", "pittsburgh",
	"philadelphia", "baltimore", "charlotte", "raleigh", "nashville",
	"orlando", "san diego", "sacramento", "salt lake city", "st. louis",
	"minneapolis", "kansas city", "cincinnati", "columbus", "indianapolis",
	"detroit", "cleveland", "milwaukee", "tampa", "san jose", "las vegas",
	"albuquerque", "tucson", "fresno", "long beach", "mesa", "scottsdale",
	"irvine", "santa clara", "oakland", "bakersfield", "anaheim", "santa ana",
	"riverside", "stockton", "chula vista", "san bernardino", "modesto",
	"fontana", "moreno valley", "glendale", "huntington beach", "garden grove",
	"santa rosa", "ontario", "rancho cucamonga", "oxnard", "palmdale",
	"salinas", "pomona", "escondido", "torrance", "pasadena", "hayward",
	"fullerton", "orange", "el monte", "thousand oaks", "visalia",
	"simi valley", "concord", "roseville", "sunnyvale", "santa cruz",
	"san mateo", "san francisco bay area", "silicon valley",
}
