package models

import (
	"reflect"
	"testing"
)

func TestTemplatePlaceholders(t *testing.T) {
	tmpl := MessageTemplate{Content: "Hola {{nombre}}, estoy ofreciendo {{ producto }} a {{nombre}}"}

	got := tmpl.Placeholders()
	want := []string{"nombre", "producto"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(MessageTemplate{Content: "sin tokens"}.Placeholders()) != 0 {
		t.Fatal("expected no placeholders")
	}
}

func TestFrequencyCronSpec(t *testing.T) {
	tests := []struct {
		freq  Frequency
		spec  string
		valid bool
	}{
		{FrequencyHourly, "@hourly", true},
		{FrequencyDaily, "@daily", true},
		{FrequencyWeekly, "@weekly", true},
		{Frequency("monthly"), "", false},
	}
	for _, tt := range tests {
		if got := tt.freq.CronSpec(); got != tt.spec {
			t.Fatalf("%s: expected %q, got %q", tt.freq, tt.spec, got)
		}
		if got := tt.freq.Valid(); got != tt.valid {
			t.Fatalf("%s: expected valid=%v", tt.freq, tt.valid)
		}
	}
}

func TestToggledLeavesOriginal(t *testing.T) {
	c := Campaign{ID: "1", IsActive: true, TargetUsers: []string{"@a"}}
	toggled := c.Toggled()
	if toggled.IsActive || !c.IsActive {
		t.Fatalf("expected copy toggled only, got original=%v copy=%v", c.IsActive, toggled.IsActive)
	}
	if !ProviderCustomAPI.Valid() || Provider("anthropic").Valid() {
		t.Fatal("unexpected provider validity")
	}
}
