package models

import "time"

// MemberSettings holds per-member preferences. EmailNotifications is a
// tri-state pointer: only an explicit false opts the member out of
// reminder emails (absent or true means enabled).
type MemberSettings struct {
	EmailNotifications *bool `bson:"emailNotifications,omitempty" json:"emailNotifications,omitempty"`
}

// Member represents a registered member of the organization.
type Member struct {
	ID       string          `bson:"id" json:"id"`
	Email    string          `bson:"email" json:"email"`
	Name     string          `bson:"name" json:"name"`
	Major    string          `bson:"major,omitempty" json:"major,omitempty"`
	Admin    bool            `bson:"admin" json:"admin"`
	Settings *MemberSettings `bson:"settings,omitempty" json:"settings,omitempty"`
	JoinedAt time.Time       `bson:"joinedAt" json:"joinedAt"`
}

// EmailEnabled reports whether the member should receive reminder emails.
// Default-enabled: only an explicit emailNotifications=false disables.
func (m *Member) EmailEnabled() bool {
	if m.Settings == nil || m.Settings.EmailNotifications == nil {
		return true
	}
	return *m.Settings.EmailNotifications
}
