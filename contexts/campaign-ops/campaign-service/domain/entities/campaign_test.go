package entities

import "testing"

func TestOwnerInitialsFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Juan Perez", "JP"},
		{"maria de la cruz", "MC"},
		{"Prince", "P"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := OwnerInitialsFromName(tc.name); got != tc.want {
			t.Errorf("initials of %q = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCampaignTransitionsAreForwardOnly(t *testing.T) {
	campaign := Campaign{State: StateCreativeSent}
	if !campaign.CanTransitionTo(StateActive) {
		t.Fatalf("creative_sent must advance to active")
	}
	if !campaign.CanTransitionTo(StateCreativeSent) {
		t.Fatalf("same-state transition is always allowed")
	}
	if campaign.CanTransitionTo(StatePending) {
		t.Fatalf("backwards transition must be rejected")
	}

	archived := Campaign{State: StateArchived}
	if archived.CanTransitionTo(StateActive) {
		t.Fatalf("archived campaigns only leave through reactivation")
	}
}

func TestNegativeMetricFields(t *testing.T) {
	spend := -10.5
	leads := int64(-1)
	campaign := Campaign{WeeklySpend: &spend, Leads: &leads}

	fields := campaign.NegativeMetricFields()
	if len(fields) != 2 {
		t.Fatalf("expected two offending fields, got %v", fields)
	}

	clean := Campaign{}
	if got := clean.NegativeMetricFields(); len(got) != 0 {
		t.Fatalf("nil metrics are never negative, got %v", got)
	}
}

func TestRecomputeCostPerLead(t *testing.T) {
	spend := 100.0
	leads := int64(5)
	campaign := Campaign{WeeklySpend: &spend, Leads: &leads}
	campaign.RecomputeCostPerLead()
	if campaign.CostPerLead == nil || *campaign.CostPerLead != 20 {
		t.Fatalf("expected cost per lead 20, got %+v", campaign.CostPerLead)
	}

	zero := int64(0)
	campaign.Leads = &zero
	campaign.RecomputeCostPerLead()
	if campaign.CostPerLead == nil || *campaign.CostPerLead != 20 {
		t.Fatalf("zero leads must not recompute, got %+v", campaign.CostPerLead)
	}
}
