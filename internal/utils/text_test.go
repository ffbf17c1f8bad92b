package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "訪問して体調を確認", "訪問して体調を確認"},
		{"tags stripped", "<b>important</b> note", "important note"},
		{"script removed", `before<script>alert("x")</script>after`, "beforeafter"},
		{"entities decoded", "Tom &amp; Jerry", "Tom & Jerry"},
		{"spaces collapsed within lines", "a   b\t\tc", "a b c"},
		{"newlines preserved", "line one\nline   two", "line one\nline two"},
		{"trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeContent(tt.in))
		})
	}
}

func TestNormalizeForSearch(t *testing.T) {
	// Half-width katakana folds to full-width, so either spelling matches.
	require.Equal(t, NormalizeForSearch("ﾀﾅｶ"), NormalizeForSearch("タナカ"))
	// Full-width latin folds to ASCII and lowercases.
	require.Equal(t, "tanaka", NormalizeForSearch("ＴＡＮＡＫＡ"))
	require.Equal(t, "tanaka", NormalizeForSearch("Tanaka"))
}
