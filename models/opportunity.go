package models

import "time"

// Opportunity is a posting on the opportunity board (internships,
// scholarships, volunteering).
type Opportunity struct {
	ID           string     `bson:"id" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Organization string     `bson:"organization" json:"organization"`
	Deadline     *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Link         string     `bson:"link,omitempty" json:"link,omitempty"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
