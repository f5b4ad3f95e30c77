package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "plain delivery url",
			url:  "https://res.cloudinary.com/demo/image/upload/devsfusion/projects/abc123.jpg",
			want: "devsfusion/projects/abc123",
			ok:   true,
		},
		{
			name: "versioned url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/devsfusion/projects/abc123.png",
			want: "devsfusion/projects/abc123",
			ok:   true,
		},
		{
			name: "transformation plus version",
			url:  "https://res.cloudinary.com/demo/image/upload/c_limit,w_1200,h_800/v1712345678/devsfusion/general/logo.webp",
			want: "devsfusion/general/logo",
			ok:   true,
		},
		{
			name: "missing namespace gets prefixed",
			url:  "https://res.cloudinary.com/demo/image/upload/projects/abc123.jpg",
			want: "devsfusion/projects/abc123",
			ok:   true,
		},
		{
			name: "not a cloudinary url",
			url:  "https://example.com/images/pic.jpg",
			ok:   false,
		},
		{
			name: "empty url",
			url:  "",
			ok:   false,
		},
		{
			name: "cloudinary host without upload segment",
			url:  "https://res.cloudinary.com/demo/image/fetch/pic.jpg",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PublicIDFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
