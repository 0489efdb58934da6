package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("**Kütüphane** saatleri güncellendi")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>Kütüphane</strong>")
}

func TestToHTMLDropsRawHTML(t *testing.T) {
	out, err := ToHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
