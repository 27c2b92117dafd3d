package reminder

import "clubhub/models"

// EligibleRecipients returns the members that should receive a reminder
// email: a usable address and no explicit opt-out. Absent settings (or an
// absent emailNotifications flag) count as opted in.
func EligibleRecipients(members []models.Member) []models.Member {
	var out []models.Member
	for _, m := range members {
		if m.Email == "" {
			continue
		}
		if !m.EmailEnabled() {
			continue
		}
		out = append(out, m)
	}
	return out
}
