package models

import (
	"fmt"
	"testing"
)

func TestImageSet_FirstAvailable_AllCombinations(t *testing.T) {
	t.Parallel()
	urls := []string{"small.jpg", "medium.jpg", "large.jpg", "original.jpg"}

	// Every presence/absence combination of the four tiers: bit i set means tier i is present.
	for mask := 0; mask < 16; mask++ {
		mask := mask
		t.Run(fmt.Sprintf("mask_%04b", mask), func(t *testing.T) {
			t.Parallel()
			var slots [4]*string
			expected := ""
			for i := 0; i < 4; i++ {
				if mask&(1<<i) == 0 {
					continue
				}
				u := urls[i]
				slots[i] = &u
				if expected == "" {
					expected = u
				}
			}
			set := ImageSet{Small: slots[0], Medium: slots[1], Large: slots[2], Original: slots[3]}

			got, ok := set.FirstAvailable()
			if ok != (expected != "") {
				t.Fatalf("Expected ok=%v, got %v", expected != "", ok)
			}
			if got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
		})
	}
}

func TestImageSet_FirstAvailable_SkipsEmptyStrings(t *testing.T) {
	t.Parallel()
	empty := ""
	large := "large.jpg"
	set := ImageSet{Small: &empty, Medium: &empty, Large: &large}

	got, ok := set.FirstAvailable()
	if !ok || got != "large.jpg" {
		t.Errorf("Expected large.jpg, got %q (ok=%v)", got, ok)
	}
}

func TestShow_Accessors_Absent(t *testing.T) {
	t.Parallel()
	var nilShow *Show
	if nilShow.DisplayName() != "" || nilShow.Description() != "" {
		t.Error("Expected nil show accessors to return empty strings")
	}

	show := &Show{}
	if show.DisplayName() != "" {
		t.Errorf("Expected empty name, got %q", show.DisplayName())
	}
	if show.Description() != "" {
		t.Errorf("Expected empty description, got %q", show.Description())
	}
	if show.Score != 0 {
		t.Errorf("Expected default score 0, got %v", show.Score)
	}
}

func TestShow_Accessors_Present(t *testing.T) {
	t.Parallel()
	name := "Under the Dome"
	summary := "Invisible dome."
	show := &Show{Name: &name, Summary: &summary}

	if show.DisplayName() != name {
		t.Errorf("Expected %q, got %q", name, show.DisplayName())
	}
	if show.Description() != summary {
		t.Errorf("Expected %q, got %q", summary, show.Description())
	}
}
