package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTasks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain comma list",
			text: "Write a blog post, Research frameworks, Deploy the project",
			want: []string{"Write a blog post", "Research frameworks", "Deploy the project"},
		},
		{
			name: "extra whitespace and trailing comma",
			text: "  Book hotel ,Check tires ,  Pack snacks , ",
			want: []string{"Book hotel", "Check tires", "Pack snacks"},
		},
		{
			name: "empty reply",
			text: "",
			want: []string{},
		},
		{
			name: "only separators",
			text: " , ,, ",
			want: []string{},
		},
		{
			name: "single task without comma",
			text: "Walk the dog",
			want: []string{"Walk the dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTasks(tt.text))
		})
	}
}
