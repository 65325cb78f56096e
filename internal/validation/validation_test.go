package validation

import (
	"errors"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "parent address", email: "mama@example.com"},
		{name: "subdomain", email: "papa@mail.example.jp"},
		{name: "plus tag", email: "parent+kanji@example.com"},
		{name: "surrounding spaces are trimmed", email: "  mama@example.com "},
		{name: "no at sign", email: "mama.example.com", wantErr: true},
		{name: "no domain", email: "mama@", wantErr: true},
		{name: "no local part", email: "@example.com", wantErr: true},
		{name: "blank", email: "", wantErr: true},
		{name: "inner space", email: "ma ma@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
			var ve ValidationError
			if err != nil && (!errors.As(err, &ve) || ve.Field != "email") {
				t.Errorf("error = %#v, want ValidationError on email", err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "latin", input: "Hana"},
		{name: "single kanji", input: "空"},
		{name: "hiragana", input: "はなこ"},
		{name: "twenty kana is the limit", input: "あいうえおかきくけこさしすせそたちつてと"},
		{name: "twenty one kana", input: "あいうえおかきくけこさしすせそたちつてとな", wantErr: true},
		{name: "blank", input: "", wantErr: true},
		{name: "only spaces", input: "   ", wantErr: true},
		{name: "control character", input: "Ha\x00na", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{name: "four digits", pin: "1234", wantErr: false},
		{name: "eight digits", pin: "12345678", wantErr: false},
		{name: "three digits", pin: "123", wantErr: true},
		{name: "nine digits", pin: "123456789", wantErr: true},
		{name: "letters", pin: "12ab", wantErr: true},
		{name: "empty", pin: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePIN(tt.pin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePIN(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestValidatorStruct(t *testing.T) {
	type request struct {
		StageID string `json:"stage_id" validate:"required"`
		Amount  int    `json:"amount" validate:"gte=1,lte=10"`
	}

	v := NewValidator()

	if err := v.Struct(request{StageID: "grade_1_slow", Amount: 3}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	err := v.Struct(request{Amount: 11})
	var fe *FieldsError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FieldsError", err)
	}
	if _, ok := fe.Fields["stage_id"]; !ok {
		t.Errorf("missing stage_id message: %v", fe.Fields)
	}
	if msg := fe.Fields["amount"]; msg == "" {
		t.Errorf("missing amount message: %v", fe.Fields)
	}
}
