package predict

import "sort"

var stateNames = map[string]string{
	"maharashtra": "Maharashtra",
	"delhi":       "Delhi",
	"up":          "Uttar Pradesh",
	"karnataka":   "Karnataka",
	"tn":          "Tamil Nadu",
	"wb":          "West Bengal",
	"telangana":   "Telangana",
}

var districtStates = map[string]string{
	"Mumbai":          "maharashtra",
	"Pune":            "maharashtra",
	"Nagpur":          "maharashtra",
	"New Delhi":       "delhi",
	"South Delhi":     "delhi",
	"Lucknow":         "up",
	"Kanpur":          "up",
	"Varanasi":        "up",
	"Bengaluru Urban": "karnataka",
	"Mysuru":          "karnataka",
	"Chennai":         "tn",
	"Coimbatore":      "tn",
	"Madurai":         "tn",
	"Kolkata":         "wb",
	"Howrah":          "wb",
	"Hyderabad":       "telangana",
	"Warangal":        "telangana",
}

// StateForDistrict returns the state key of a district.
func StateForDistrict(district string) (string, bool) {
	s, ok := districtStates[district]
	return s, ok
}

// StateDisplayName maps a state key to its display name; unknown keys are returned as is.
func StateDisplayName(key string) string {
	if n, ok := stateNames[key]; ok {
		return n
	}
	return key
}

// Districts returns the known district names, sorted.
func Districts() []string {
	out := make([]string, 0, len(districtStates))
	for d := range districtStates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// States returns the known state keys, sorted.
func States() []string {
	out := make([]string, 0, len(stateNames))
	for k := range stateNames {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
