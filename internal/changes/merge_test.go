package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		recommended []string
		want        []string
	}{
		{
			name:        "removal and addition",
			current:     []string{"a.b", "c.d"},
			recommended: []string{"c.d", "e.f"},
			want:        []string{"c.d", "e.f"},
		},
		{
			name:        "pure addition",
			current:     []string{"a.b"},
			recommended: []string{"a.b", "c.d"},
			want:        []string{"a.b", "c.d"},
		},
		{
			name:        "identical sets",
			current:     []string{"b.c", "a.b"},
			recommended: []string{"a.b", "b.c"},
			want:        []string{"a.b", "b.c"},
		},
		{
			name:        "result is sorted",
			current:     []string{"z.z", "m.m"},
			recommended: []string{"m.m", "z.z", "a.a"},
			want:        []string{"a.a", "m.m", "z.z"},
		},
		{
			name:        "empty inputs",
			current:     nil,
			recommended: nil,
			want:        []string{},
		},
		{
			name:        "empty recommendations drop everything",
			current:     []string{"a.b"},
			recommended: nil,
			want:        []string{},
		},
		{
			name:        "duplicates collapse",
			current:     []string{"a.b", "a.b"},
			recommended: []string{"a.b", "c.d", "c.d"},
			want:        []string{"a.b", "c.d"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.current, tt.recommended))
		})
	}
}

func TestMerge_ExcludesDropped(t *testing.T) {
	merged := Merge([]string{"a.b", "c.d", "e.f"}, []string{"c.d"})
	assert.NotContains(t, merged, "a.b")
	assert.NotContains(t, merged, "e.f")
	assert.Equal(t, []string{"c.d"}, merged)
}
