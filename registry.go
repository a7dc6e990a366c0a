package flyweight

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Keys of the unit kinds known to every Registry.
const (
	KeyInfantry  = "infantry"
	KeyTransport = "transport"
	KeyEquipment = "equipment"
	KeyAircraft  = "aircraft"
)

// Registry is the flyweight factory. It owns exactly one instance of each unit kind and
// hands out shared references to them.
//
// The set of keys is fixed when the registry is created. After Close no lookup succeeds.
type Registry struct {
	mu       sync.RWMutex
	units    map[string]UnitType
	inClosed atomic.Bool // true once the registry is torn down
}

// NewRegistry creates a registry eagerly populated with one instance of every unit kind.
func NewRegistry() *Registry {
	return &Registry{
		units: map[string]UnitType{
			KeyInfantry:  newLightInfantry(),
			KeyTransport: newTransportVehicles(),
			KeyEquipment: newUnearthlyMilitaryEquipment(),
			KeyAircraft:  newAircraft(),
		},
	}
}

// Lookup returns the shared unit registered under key.
// The bool is false for an unknown key or a closed registry; absence is not an error.
func (r *Registry) Lookup(key string) (UnitType, bool) {
	if r.closed() {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	unit, ok := r.units[key]
	return unit, ok
}

// Keys returns the known keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := maps.Keys(r.units)
	slices.Sort(keys)
	return keys
}

// Close tears the registry down and releases every unit it owns.
// It returns ErrRegistryClosed if the registry was already closed.
func (r *Registry) Close() error {
	if !r.inClosed.CompareAndSwap(false, true) {
		return ErrRegistryClosed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = nil
	return nil
}

func (r *Registry) closed() bool {
	return r.inClosed.Load()
}
