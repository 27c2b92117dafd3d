package reminder

import (
	"testing"

	"clubhub/models"
)

func boolPtr(b bool) *bool { return &b }

func TestEligibleRecipients(t *testing.T) {
	tests := []struct {
		name     string
		member   models.Member
		eligible bool
	}{
		{
			name:     "no settings defaults to enabled",
			member:   models.Member{ID: "m1", Email: "a@campus.edu"},
			eligible: true,
		},
		{
			name: "settings without flag defaults to enabled",
			member: models.Member{
				ID: "m2", Email: "b@campus.edu",
				Settings: &models.MemberSettings{},
			},
			eligible: true,
		},
		{
			name: "explicit true",
			member: models.Member{
				ID: "m3", Email: "c@campus.edu",
				Settings: &models.MemberSettings{EmailNotifications: boolPtr(true)},
			},
			eligible: true,
		},
		{
			name: "explicit false opts out",
			member: models.Member{
				ID: "m4", Email: "d@campus.edu",
				Settings: &models.MemberSettings{EmailNotifications: boolPtr(false)},
			},
			eligible: false,
		},
		{
			name:     "missing email excluded",
			member:   models.Member{ID: "m5"},
			eligible: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := EligibleRecipients([]models.Member{tc.member})
			if got := len(out) == 1; got != tc.eligible {
				t.Errorf("eligible = %v, want %v", got, tc.eligible)
			}
		})
	}
}

func TestEligibleRecipients_PreservesOrder(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Email: "a@campus.edu"},
		{ID: "m2", Email: "b@campus.edu", Settings: &models.MemberSettings{EmailNotifications: boolPtr(false)}},
		{ID: "m3", Email: "c@campus.edu"},
	}
	out := EligibleRecipients(members)
	if len(out) != 2 || out[0].ID != "m1" || out[1].ID != "m3" {
		t.Fatalf("recipients = %+v, want m1 then m3", out)
	}
}
