package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrowseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantURI    string
		wantConfig string
	}{
		{name: "no args", args: nil, wantURI: defaultHomepage},
		{name: "bare host", args: []string{"example.org"}, wantURI: "https://example.org"},
		{name: "full url", args: []string{"http://localhost:8080/x"}, wantURI: "http://localhost:8080/x"},
		{name: "about page", args: []string{"about:blank"}, wantURI: "about:blank"},
		{name: "config flag", args: []string{"--config", "/tmp/c.toml", "example.org"}, wantURI: "https://example.org", wantConfig: "/tmp/c.toml"},
		{name: "short config flag", args: []string{"example.org", "-c", "c.toml"}, wantURI: "https://example.org", wantConfig: "c.toml"},
		{name: "config equals", args: []string{"--config=c.toml"}, wantURI: defaultHomepage, wantConfig: "c.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, cfg := parseBrowseArgs(tt.args)
			assert.Equal(t, tt.wantURI, uri)
			assert.Equal(t, tt.wantConfig, cfg)
		})
	}
}
