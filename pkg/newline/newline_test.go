package newline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ir-printer/engine/pkg/newline"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		preference string
		source     string
		want       string
	}{
		{"explicit crlf", newline.PreferenceCRLF, "", "\r\n"},
		{"explicit lf", newline.PreferenceLF, "", "\n"},
		{
			name:       "auto majority vote favors lf",
			preference: newline.PreferenceAuto,
			// 1 CR, 5 LF: CR does not exceed half of LF (2.5), so LF wins.
			source: "a\rb\nc\nd\ne\nf\n",
			want:   newline.LF,
		},
		{
			name:       "auto majority vote favors crlf",
			preference: newline.PreferenceAuto,
			// Every line uses \r\n: 4 CR, 4 LF. CR (4) exceeds half of LF (2).
			source: "a\r\nb\r\nc\r\nd\r\n",
			want:   newline.CRLF,
		},
		{"auto empty source defaults lf", newline.PreferenceAuto, "", newline.LF},
		{"unknown preference defaults lf", "bogus", "", newline.LF},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, newline.Resolve(tc.preference, tc.source))
		})
	}
}

func TestResolveSystem(t *testing.T) {
	got := newline.Resolve(newline.PreferenceSystem, "")
	require.Contains(t, []string{newline.LF, newline.CRLF}, got)
}
