package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	out := RenderTree("demo", []string{
		"package.json",
		"apps/backend/",
		"apps/frontend/",
		"README.md",
	})

	want := strings.Join([]string{
		"demo/",
		"├── apps/",
		"│   ├── backend/",
		"│   └── frontend/",
		"├── README.md",
		"└── package.json",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree("demo", nil))
}

func TestRenderTree_IntermediateDirectories(t *testing.T) {
	out := RenderTree("shop", []string{
		"apps/web/package.json",
		"apps/web",
		".env.example",
	})

	want := strings.Join([]string{
		"shop/",
		"├── apps/",
		"│   └── web/",
		"│       └── package.json",
		"└── .env.example",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}
