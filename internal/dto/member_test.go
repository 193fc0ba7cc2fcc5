package dto

import "testing"

func TestInviteMemberRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		wantOK bool
	}{
		{"valid", "jo@example.com", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"no at sign", "jo.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := InviteMemberRequest{Email: tt.email}
			if ok, _ := req.Validate(); ok != tt.wantOK {
				t.Errorf("Validate(%q) = %v, want %v", tt.email, ok, tt.wantOK)
			}
		})
	}
}

func TestInviteMemberRequestDerivedName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jo@example.com", "jo"},
		{"jo.smith@venue.co", "jo.smith"},
		{" padded@example.com ", "padded"},
	}

	for _, tt := range tests {
		req := InviteMemberRequest{Email: tt.email}
		if got := req.DerivedName(); got != tt.want {
			t.Errorf("DerivedName(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
