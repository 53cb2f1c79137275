package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "joe@example.com", true},
		{"dotted local part", "first.last@example.com", true},
		{"plus tag", "first.last+tag@example.com", true},
		{"subdomains", "joe@mail.sub.example.co.uk", true},
		{"uppercase", "JOE@EXAMPLE.COM", true},
		{"digits in domain", "joe@ex4mple99.com", true},
		{"empty string", "", false},
		{"missing at sign", "joe.example.com", false},
		{"missing local part", "@example.com", false},
		{"missing domain", "joe@", false},
		{"domain without dot", "joe@example", false},
		{"domain label starts with hyphen", "joe@-example.com", false},
		{"space in local part", "joe smith@example.com", false},
		{"trailing whitespace", "joe@example.com ", false},
		{"double at sign", "joe@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
