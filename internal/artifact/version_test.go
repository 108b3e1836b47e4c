package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		location string
		version  string
		found    bool
	}{
		{"jenkins-1.2.4.war", "1.2.4", true},
		{"/srv/wars/jenkins-1.2.4.war", "1.2.4", true},
		{"http://repo.example.com/wars/jenkins-1.2.4.war", "1.2.4", true},
		{"http://repo.example.com/wars/jenkins-1.2.4.war?token=abc", "1.2.4", true},
		{"app-2.0-1.war", "2.0-1", true},
		{"app.war", "", false},
		{"app-2.0-SNAPSHOT.war", "", false},
		{"nodashes.war", "", false},
		{"trailing-dash-.war", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		version, found := ExtractVersion(test.location)
		assert.Equal(t, test.found, found, "location %q", test.location)
		assert.Equal(t, test.version, version, "location %q", test.location)
	}
}
