package model

import (
	"errors"
	"testing"
)

func TestPlatformValidation(t *testing.T) {
	tests := map[string]struct {
		platform Platform
		valid    bool
	}{
		"github valid":    {platform: GitHub, valid: true},
		"twitter valid":   {platform: Twitter, valid: true},
		"linkedin valid":  {platform: LinkedIn, valid: true},
		"facebook valid":  {platform: Facebook, valid: true},
		"instagram valid": {platform: Instagram, valid: true},
		"youtube valid":   {platform: YouTube, valid: true},
		"email valid":     {platform: Email, valid: true},
		"phone valid":     {platform: Phone, valid: true},
		"empty invalid":   {platform: "", valid: false},
		"unknown invalid": {platform: "myspace", valid: false},
		"case sensitive":  {platform: "GitHub", valid: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.platform.IsValid()
			if got != tt.valid {
				t.Errorf("Platform(%q).IsValid() = %v, want %v",
					tt.platform, got, tt.valid)
			}
		})
	}
}

func TestAllPlatforms(t *testing.T) {
	platforms := AllPlatforms()

	want := []Platform{GitHub, Twitter, LinkedIn, Facebook, Instagram, YouTube, Email, Phone}
	if len(platforms) != len(want) {
		t.Fatalf("AllPlatforms() returned %d platforms, want %d", len(platforms), len(want))
	}
	for i, p := range platforms {
		if p != want[i] {
			t.Errorf("AllPlatforms()[%d] = %q, want %q", i, p, want[i])
		}
	}
}

func TestPlatformNames(t *testing.T) {
	names := PlatformNames()
	if len(names) != 8 {
		t.Fatalf("PlatformNames() returned %d names, want 8", len(names))
	}
	if names[0] != "github" || names[7] != "phone" {
		t.Errorf("PlatformNames() = %v, want canonical order", names)
	}
}

func TestParsePlatform(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Platform
		wantErr bool
	}{
		"lowercase":     {input: "github", want: GitHub},
		"mixed case":    {input: "LinkedIn", want: LinkedIn},
		"whitespace":    {input: "  email ", want: Email},
		"x alias":       {input: "x", want: Twitter},
		"unknown":       {input: "myspace", wantErr: true},
		"empty":         {input: "", wantErr: true},
		"entity type":   {input: "repo", wantErr: true},
		"uppercase tel": {input: "PHONE", want: Phone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPlatform) {
					t.Fatalf("ParsePlatform(%q) error = %v, want ErrUnknownPlatform", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatform(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	var err error = &ParseError{URL: "https://example.com"}
	if err.Error() != "unrecognized URL: https://example.com" {
		t.Errorf("ParseError.Error() = %q", err.Error())
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.URL != "https://example.com" {
		t.Errorf("errors.As did not recover ParseError: %v", pe)
	}
}
