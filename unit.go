package flyweight

import "fmt"

// Coordinates is the extrinsic state of a unit. It is owned by the caller and passed in
// on every Display, so one shared UnitType can stand for any number of positioned units.
type Coordinates struct {
	Longitude float64
	Latitude  float64
}

// Move returns c shifted by the given deltas.
func (c Coordinates) Move(dLongitude, dLatitude float64) Coordinates {
	return Coordinates{Longitude: c.Longitude + dLongitude, Latitude: c.Latitude + dLatitude}
}

// UnitType is a flyweight. It holds the intrinsic state shared by every unit of one kind.
// Implementations are immutable once constructed.
type UnitType interface {
	// Name returns the display name of the unit kind.
	Name() string

	// Speed returns the fixed speed of the unit kind.
	Speed() int

	// Force returns the fixed force of the unit kind.
	Force() int

	// Display renders the intrinsic attributes together with the caller supplied coordinates.
	Display(c Coordinates) string
}

var (
	_ UnitType = (*LightInfantry)(nil)
	_ UnitType = (*TransportVehicles)(nil)
	_ UnitType = (*UnearthlyMilitaryEquipment)(nil)
	_ UnitType = (*Aircraft)(nil)
)

// stats is the intrinsic state embedded by every variant.
type stats struct {
	speed int
	force int
}

func (s stats) Speed() int { return s.speed }

func (s stats) Force() int { return s.force }

func display(name string, s stats, c Coordinates) string {
	return fmt.Sprintf("%s has speed %d strength %d:\ncoordinates: %f - latitude   %f - longitude",
		name, s.speed, s.force, c.Latitude, c.Longitude)
}

// LightInfantry is slow and lightly armed.
type LightInfantry struct{ stats }

func newLightInfantry() *LightInfantry {
	return &LightInfantry{stats{speed: 20, force: 10}}
}

func (*LightInfantry) Name() string { return "Light infantry" }

func (u *LightInfantry) Display(c Coordinates) string {
	return display(u.Name(), u.stats, c)
}

// TransportVehicles move fast and carry no weapons.
type TransportVehicles struct{ stats }

func newTransportVehicles() *TransportVehicles {
	return &TransportVehicles{stats{speed: 70, force: 0}}
}

func (*TransportVehicles) Name() string { return "Transport vehicles" }

func (u *TransportVehicles) Display(c Coordinates) string {
	return display(u.Name(), u.stats, c)
}

// UnearthlyMilitaryEquipment is the slowest and strongest kind.
type UnearthlyMilitaryEquipment struct{ stats }

func newUnearthlyMilitaryEquipment() *UnearthlyMilitaryEquipment {
	return &UnearthlyMilitaryEquipment{stats{speed: 15, force: 150}}
}

func (*UnearthlyMilitaryEquipment) Name() string { return "Unearthly military equipment" }

func (u *UnearthlyMilitaryEquipment) Display(c Coordinates) string {
	return display(u.Name(), u.stats, c)
}

// Aircraft is the fastest kind.
type Aircraft struct{ stats }

func newAircraft() *Aircraft {
	return &Aircraft{stats{speed: 300, force: 100}}
}

func (*Aircraft) Name() string { return "Aircraft" }

func (u *Aircraft) Display(c Coordinates) string {
	return display(u.Name(), u.stats, c)
}
