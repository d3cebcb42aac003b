package domain

import "time"

// EquipmentStatus describes the serviceability of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentWorking     EquipmentStatus = "Working"
	EquipmentMaintenance EquipmentStatus = "Maintenance"
	EquipmentBroken      EquipmentStatus = "Broken"
)

// Equipment is one machine on the gym floor. IDs are assigned from 201
// upwards.
type Equipment struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Status      EquipmentStatus `json:"status"`
	LastService time.Time       `json:"lastService"`
}

// ValidEquipmentStatus reports whether s is one of the known status values.
func ValidEquipmentStatus(s EquipmentStatus) bool {
	switch s {
	case EquipmentWorking, EquipmentMaintenance, EquipmentBroken:
		return true
	}
	return false
}
