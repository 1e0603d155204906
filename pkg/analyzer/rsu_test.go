package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfreitas/monarchu/pkg/corpus"
)

func TestDetectRSUVest(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "no rsu lines",
			text: "Regular 3000.00",
			want: false,
		},
		{
			name: "vest dwarfs regular pay",
			text: "Rsu Vest 15000.00\nRegular 3000.00",
			want: true,
		},
		{
			name: "vest below twice regular pay",
			text: "Rsu Vest 5000.00\nRegular 3000.00",
			want: false,
		},
		{
			name: "no regular line, large vest",
			text: "Rsu Vest 15000.00",
			want: true,
		},
		{
			name: "no regular line, small vest",
			text: "Rsu Vest 500.00",
			want: false,
		},
		{
			name: "rsu line with no parsable amount",
			text: "Rsu Vest pending",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := corpus.New(tt.text, nil, 1)
			assert.Equal(t, tt.want, DetectRSUVest(doc))
		})
	}
}
