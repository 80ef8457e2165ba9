package osmhttp

// Mode is the input mode vocabulary spec.md §6 defines, exhaustive and
// case-sensitive: vehicle, pedestrian, poi.
type Mode string

const (
	// ModeVehicle builds a directed graph; the Overpass way filter
	// whitelists motor highway classes.
	ModeVehicle Mode = "vehicle"
	// ModePedestrian builds an undirected graph; the Overpass way filter
	// whitelists foot-legal classes (includes footway/steps, excludes
	// pure-motor classes).
	ModePedestrian Mode = "pedestrian"
	// ModePOI fetches nodes only; no graph is built for this mode.
	ModePOI Mode = "poi"
)

// Directed reports whether mode produces a directed graph.
func (m Mode) Directed() bool { return m == ModeVehicle }

// IsWayMode reports whether mode fetches ways (as opposed to POI nodes).
func (m Mode) IsWayMode() bool { return m == ModeVehicle || m == ModePedestrian }

const vehicleHighways = `motorway|trunk|primary|secondary|tertiary|unclassified|residential|` +
	`pedestrian|motorway_link|trunk_link|primary_link|secondary_link|tertiary_link|` +
	`living_street|service|track|bus_guideway|escape|raceway|road|bridleway|corridor|path`

const pedestrianHighways = `cycleway|primary|secondary|tertiary|unclassified|residential|` +
	`pedestrian|primary_link|secondary_link|tertiary_link|living_street|service|` +
	`track|bus_guideway|escape|road|footway|bridleway|steps|corridor|path`

const poiAmenities = `bar|biergarten|cafe|drinking_water|fast_food|ice_cream|food_court|pub|restaurant|` +
	`college|driving_school|kindergarten|language_school|library|music_school|school|sport_school|` +
	`toy_library|university|bicycle_parking|bicycle_repair_station|bicycle_rental|boat_rental|` +
	`boat_sharing|bus_station|car_rental|car_sharing|car_wash|vehicle_inspection|charging_station|` +
	`ferry_terminal|fuel|taxi|atm|bank|bureau_de_change|baby_hatch|clinic|doctors|dentist|hospital|` +
	`nursing_home|pharmacy|social_facility|veterinary|arts_centre|brothel|casino|cinema|` +
	`community_centre|gambling|nightclub|planetarium|public_bookcase|social_centre|stripclub|studio|` +
	`swingerclub|theatre|animal_boarding|animal_shelter|conference_centre|courthouse|crematorium|` +
	`dive_centre|embassy|fire_station|give_box|internet_cafe|monastery|photo_booth|place_of_worship|` +
	`police|post_box|post_depot|post_office|prison|public_bath|ranger_station|recycling|` +
	`refugee_site|sanitary_dump_station|shelter|shower|telephone|toilets|townhall|vending_machine|` +
	`waste_basket|waste_disposal|waste_transfer_station|watering_place|water_point`

// modeQueries maps each Mode to its Overpass filter template(s), each with
// one "%s" placeholder for the geo filter clause (spec.md §6, grounded on
// original_source/osmrx/globals/queries.py's osm_queries table). ModePOI
// carries two independent filters (amenity, shop) joined sequentially, as
// the source does.
var modeQueries = map[Mode][]string{
	ModeVehicle:    {`way["highway"~"^(` + vehicleHighways + `)$"]["area"!~"."](%s);`},
	ModePedestrian: {`way["highway"~"^(` + pedestrianHighways + `)$"]["area"!~"."](%s);`},
	ModePOI: {
		`node[~"^(amenity)$"~"(` + poiAmenities + `)"](%s);`,
		`node[~"^(shop)$"~"."](%s);`,
	},
}
