package entity

// Vehicle is the locally held registry entry. OwnerName and OwnerPhone belong to
// the workshop, not the lookup source, and are never touched by a lookup merge.
type Vehicle struct {
	Registration string `json:"registration"`
	State        string `json:"state"`
	VIN          string `json:"vin"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
}

// VehicleRecord is the canonical shape produced by lookup normalization.
// Registration and State are never blank on a record that normalization accepted.
// Model and Engine are composites (model+badge, capacity+drivetrain).
type VehicleRecord struct {
	Registration string   `json:"registration"`
	State        string   `json:"state"`
	VIN          string   `json:"vin"`
	Year         string   `json:"year"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	BodyType     string   `json:"body_type"`
	FuelType     string   `json:"fuel_type"`
	Engine       string   `json:"engine"`
	Transmission string   `json:"transmission"`
	Colour       string   `json:"colour"`
	Confidence   *float64 `json:"confidence,omitempty"`
	Source       string   `json:"source"`
}

// OwnerDetails is whatever the caller currently holds as pending owner input.
// Seeded onto a registry entry on first insert; ignored on merge into an
// existing entry.
type OwnerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
