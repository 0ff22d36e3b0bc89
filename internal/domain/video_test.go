package domain

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSynthesizeEmbedURL(t *testing.T) {
	tests := []struct {
		name      string
		embedURL  string
		youtubeID string
		want      string
	}{
		{
			name:      "blank embed url is derived",
			embedURL:  "",
			youtubeID: "dQw4w9WgXcQ",
			want:      "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name:      "explicit embed url wins",
			embedURL:  "https://player.example.com/v/abc",
			youtubeID: "dQw4w9WgXcQ",
			want:      "https://player.example.com/v/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SynthesizeEmbedURL(tt.embedURL, tt.youtubeID); got != tt.want {
				t.Errorf("SynthesizeEmbedURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMakeExcerpt(t *testing.T) {
	short := "A short reflection."
	if got := MakeExcerpt(short); got != short {
		t.Errorf("MakeExcerpt(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("a", 120)
	got := MakeExcerpt(long)
	if want := strings.Repeat("a", 80) + "..."; got != want {
		t.Errorf("MakeExcerpt(long) = %q, want first 80 chars plus ellipsis", got)
	}

	exactly := strings.Repeat("b", 80)
	if got := MakeExcerpt(exactly); got != exactly {
		t.Errorf("MakeExcerpt(80 chars) = %q, want unchanged", got)
	}

	// Truncation counts runes: 90 three-byte characters keep the first 80
	// whole, and the result stays valid UTF-8.
	multibyte := strings.Repeat("日", 90)
	got = MakeExcerpt(multibyte)
	if want := strings.Repeat("日", 80) + "..."; got != want {
		t.Errorf("MakeExcerpt(multibyte) = %q, want first 80 runes plus ellipsis", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("MakeExcerpt(multibyte) produced invalid UTF-8: %q", got)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims and preserves order",
			input: "Consistency,  Fitness ,Mindset",
			want:  []string{"Consistency", "Fitness", "Mindset"},
		},
		{
			name:  "empty segments dropped",
			input: "a,,b",
			want:  []string{"a", "b"},
		},
		{
			name:  "whitespace-only segment dropped",
			input: "a,  ,b",
			want:  []string{"a", "b"},
		},
		{
			name:  "single tag",
			input: "Discipline",
			want:  []string{"Discipline"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "case preserved",
			input: "fitness,Fitness",
			want:  []string{"fitness", "Fitness"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTags(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay(" 42 ")
	if err != nil {
		t.Fatalf("ParseDay(\" 42 \") error = %v", err)
	}
	if day != 42 {
		t.Errorf("ParseDay(\" 42 \") = %d, want 42", day)
	}

	if _, err := ParseDay("not-a-day"); err == nil {
		t.Error("ParseDay(\"not-a-day\") error = nil, want validation error")
	}
	if _, err := ParseDay(""); err == nil {
		t.Error("ParseDay(\"\") error = nil, want validation error")
	}
}
