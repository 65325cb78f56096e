package credentials

import (
	"errors"
	"regexp"
	"testing"
)

var handlePattern = regexp.MustCompile(`^[a-z]+-[a-z]+(-[0-9]{2})?$`)

func TestGenerateHandle(t *testing.T) {
	lookupErr := errors.New("db down")

	tests := []struct {
		name       string
		taken      func(string) (bool, error)
		wantErr    error
		wantSuffix bool
	}{
		{
			name:  "first candidate is free",
			taken: func(string) (bool, error) { return false, nil },
		},
		{
			name: "falls back to a numbered handle",
			taken: func(h string) (bool, error) {
				return !regexp.MustCompile(`-[0-9]{2}$`).MatchString(h), nil
			},
			wantSuffix: true,
		},
		{
			name:    "every candidate taken",
			taken:   func(string) (bool, error) { return true, nil },
			wantErr: ErrHandleExhausted,
		},
		{
			name:    "lookup failure",
			taken:   func(string) (bool, error) { return false, lookupErr },
			wantErr: lookupErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := GenerateHandle(tt.taken)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !handlePattern.MatchString(handle) {
				t.Errorf("handle %q has the wrong shape", handle)
			}
			hasSuffix := regexp.MustCompile(`-[0-9]{2}$`).MatchString(handle)
			if hasSuffix != tt.wantSuffix {
				t.Errorf("handle %q suffix = %v, want %v", handle, hasSuffix, tt.wantSuffix)
			}
		})
	}
}

func TestWordListsAreHandleSafe(t *testing.T) {
	word := regexp.MustCompile(`^[a-z]+$`)
	for _, list := range [][]string{adjectives, nouns} {
		for _, w := range list {
			if !word.MatchString(w) {
				t.Errorf("word %q would break the handle format", w)
			}
		}
	}
}
