package summary

import (
	"strings"
	"testing"

	"github.com/notetoquiz/notepack/internal/notes"
)

const plantNotes = `Photosynthesis converts light into chemical energy inside plant cells.
Chlorophyll absorbs light in the blue and red wavelengths.
The light reactions split water and release oxygen.
The Calvin cycle fixes carbon dioxide into glucose.
Energy stored as glucose drives plant growth and respiration.
Stomata regulate gas exchange on the leaf surface.`

func TestBuildSectionCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			// One keyword still yields the two-section minimum.
			name:  "minimum of two",
			input: "Mitosis divides cells into two. Mitosis copies the mitosis steps.",
			want:  2,
		},
		{
			name:  "ceil of keywords over three",
			input: "Alpha bravo charlie delta echo foxtrot golf all matter here today.",
			want:  4,
		},
		{
			name:  "capped at four",
			input: plantNotes,
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(notes.Parse(tt.input))
			if len(got.Sections) != tt.want {
				t.Errorf("section count = %d, want %d", len(got.Sections), tt.want)
			}
		})
	}
}

func TestBuildSectionShape(t *testing.T) {
	s := Build(notes.Parse(plantNotes))

	for i, section := range s.Sections {
		if !strings.HasSuffix(section.Title, " focus") {
			t.Errorf("section %d: title = %q", i, section.Title)
		}
		if len(section.Bullets) == 0 {
			t.Errorf("section %d: no bullets", i)
		}
		if len(section.Bullets) > bulletsPer {
			t.Errorf("section %d: %d bullets, want <= %d", i, len(section.Bullets), bulletsPer)
		}
		for _, bullet := range section.Bullets {
			if strings.HasPrefix(bullet, "-") || strings.HasPrefix(bullet, "•") {
				t.Errorf("section %d: bullet kept its marker: %q", i, bullet)
			}
		}
	}

	// The first section anchors on the top keyword and its bullets
	// mention it.
	first := s.Sections[0]
	keyword := strings.ToLower(strings.TrimSuffix(first.Title, " focus"))
	for _, bullet := range first.Bullets {
		if !strings.Contains(strings.ToLower(bullet), keyword) {
			t.Errorf("bullet %q does not mention %q", bullet, keyword)
		}
	}
}

func TestBuildPlaceholderWhenEmpty(t *testing.T) {
	s := Build(notes.Parse(""))
	if len(s.Sections) != minSections {
		t.Fatalf("section count = %d, want %d", len(s.Sections), minSections)
	}
	for i, section := range s.Sections {
		if section.Title != "Overview focus" {
			t.Errorf("section %d: title = %q", i, section.Title)
		}
		if len(section.Bullets) != 1 || section.Bullets[0] != emptyPlaceholder {
			t.Errorf("section %d: bullets = %v, want placeholder", i, section.Bullets)
		}
	}
}

func TestPositionalSlice(t *testing.T) {
	sentences := []string{"one", "two", "three", "four", "five"}

	if got := positionalSlice(sentences, 0); len(got) != 4 || got[0] != "one" {
		t.Errorf("window 0 = %v", got)
	}
	if got := positionalSlice(sentences, 1); len(got) != 2 || got[0] != "four" {
		t.Errorf("window 1 = %v", got)
	}
	if got := positionalSlice(sentences, 2); got != nil {
		t.Errorf("window 2 = %v, want nil", got)
	}
}
