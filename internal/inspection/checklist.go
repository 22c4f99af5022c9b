// Package inspection carries the 65-point vehicle checklist and the stateful
// pagination used to print it.
package inspection

import "github.com/ozgarage/workshop-tracker/internal/entity"

// checklistPoints is the fixed 65-point inspection sheet. Order is significant
// and never changes; printed documents and the UI grid both rely on it.
var checklistPoints = []string{
	"Verify registration displayed",
	"VIN plate condition",
	"Wiper blades condition",
	"Windscreen cracks or chips",
	"Front left tyre tread",
	"Front right tyre tread",
	"Rear left tyre tread",
	"Rear right tyre tread",
	"Spare tyre condition",
	"Wheel nuts torque/condition",
	"Tyre pressures set",
	"Brake pad thickness front",
	"Brake pad thickness rear",
	"Brake rotor condition front",
	"Brake rotor condition rear",
	"Parking brake operation",
	"Brake fluid level",
	"Clutch operation (if manual)",
	"Steering free play",
	"Power steering fluid level",
	"Suspension noise front left",
	"Suspension noise front right",
	"Suspension noise rear left",
	"Suspension noise rear right",
	"Shock absorber leaks front",
	"Shock absorber leaks rear",
	"Ball joints and control arms",
	"Tie rod ends condition",
	"CV boots front",
	"CV boots rear",
	"Exhaust mounts and leaks",
	"Engine oil level",
	"Engine oil leaks",
	"Coolant level and condition",
	"Radiator hoses",
	"Drive belt condition",
	"Battery test and terminals",
	"Air filter condition",
	"Cabin filter condition",
	"Spark plugs/ignition leads",
	"Fuel system lines leaks",
	"Transmission fluid level",
	"Transmission leaks",
	"Differential leaks",
	"Underbody inspection",
	"Front brakes hydraulic lines",
	"Rear brakes hydraulic lines",
	"ABS warning light check",
	"Engine warning lights",
	"Service reminder reset",
	"Headlights low beam",
	"Headlights high beam",
	"Indicators/hazards",
	"Brake lights",
	"Reverse lights",
	"Fog lights",
	"Park lights",
	"Number plate lights",
	"Interior lights",
	"Horn operation",
	"Washer jets aim",
	"Seat belts condition",
	"Airbag light status",
	"Heater/Air con operation",
	"Road test completed",
}

// DefaultChecklist returns a fresh checklist with every point unchecked.
func DefaultChecklist() []entity.InspectionItem {
	items := make([]entity.InspectionItem, len(checklistPoints))
	for i, point := range checklistPoints {
		items[i] = entity.InspectionItem{Item: point}
	}
	return items
}

// ChecklistLength is the fixed number of inspection points.
func ChecklistLength() int {
	return len(checklistPoints)
}
