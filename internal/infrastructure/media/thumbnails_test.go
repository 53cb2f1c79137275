package media

import "testing"

func TestIsImage(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"diagram.png", true},
		{"animation.gif", true},
		{"scan.tiff", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsImage(tt.filename); got != tt.want {
				t.Errorf("IsImage(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}
