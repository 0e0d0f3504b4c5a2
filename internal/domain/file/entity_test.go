package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileRecordVisible(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name string
		rec  FileRecord
		want bool
	}{
		{"active permanent", FileRecord{Active: true}, true},
		{"active unexpired", FileRecord{Active: true, ShareExpiresAt: &future}, true},
		{"active expired", FileRecord{Active: true, ShareExpiresAt: &past}, false},
		{"deleted", FileRecord{Active: false}, false},
		{"deleted unexpired", FileRecord{Active: false, ShareExpiresAt: &future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Visible(now))
		})
	}
}

func TestShareLinkVisible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	assert.True(t, (&ShareLink{Active: true}).Visible(now))
	assert.False(t, (&ShareLink{Active: true, ExpiresAt: &past}).Visible(now))
	assert.False(t, (&ShareLink{Active: false}).Visible(now))
}
