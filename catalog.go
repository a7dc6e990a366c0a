package flyweight

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// catalogEntry is the JSON form of a unit kind.
type catalogEntry struct {
	Name  string `json:"name"`
	Speed int    `json:"speed"`
	Force int    `json:"force"`
}

// MarshalJSON renders the registry as an object keyed by unit key. A closed registry
// renders as an empty object.
func (r *Registry) MarshalJSON() ([]byte, error) {
	catalog := make(map[string]catalogEntry)
	for _, key := range r.Keys() {
		unit, ok := r.Lookup(key)
		if !ok {
			continue
		}
		catalog[key] = catalogEntry{Name: unit.Name(), Speed: unit.Speed(), Force: unit.Force()}
	}
	return json.Marshal(catalog)
}
