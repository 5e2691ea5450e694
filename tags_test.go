package csvt

import (
	"reflect"
	"testing"
)

func TestTags(t *testing.T) {
	s := sheet(t, "rent", "", "food", "rent", "food")
	if got, want := s.Tags(), []string{"rent", "food"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}

	if got := sheet(t, "", "").Tags(); got != nil {
		t.Errorf("Tags() on an untagged sheet = %v, want nil", got)
	}
}

func TestNearestTag(t *testing.T) {
	s := sheet(t, "food", "rent", "")

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"fod", "food", true},  // one deletion away
		{"rents", "rent", true},
		{"food", "", false},    // exact match is not a hint
		{"FOOD", "", false},    // nor a case-insensitive one
		{"holidays", "", false}, // too far from everything
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := s.NearestTag(tt.in, 2)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NearestTag(%q, 2) = %q, %t, want %q, %t", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
