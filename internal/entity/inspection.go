package entity

import "github.com/ozgarage/workshop-tracker/constants"

// InspectionItem is one point on the inspection checklist. Items are mutated in
// place; the checklist's length and order are fixed at creation.
type InspectionItem struct {
	Item      string              `json:"item"`
	Completed bool                `json:"completed"`
	Issue     constants.IssueCode `json:"issue"`
}
