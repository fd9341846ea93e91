package statlog_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
)

func TestIssuesError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		iss  statlog.Issues
		want string
	}{
		"Empty": {want: ""},
		"Single issue": {
			iss:  statlog.Issues{{Path: "/a", Code: statlog.CodeRequired}},
			want: "required at /a",
		},
		"Summarizes after three": {
			iss: statlog.Issues{
				{Path: "/a", Code: statlog.CodeRequired},
				{Path: "/b", Code: statlog.CodeUnknownKey},
				{Path: "/c", Code: statlog.CodeInvalidType},
				{Path: "/d", Code: statlog.CodeTooSmall},
			},
			want: "required at /a; unknown_key at /b; invalid_type at /c; ... (total 4)",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.iss.Error())
		})
	}
}

func TestIssuesRebase(t *testing.T) {
	t.Parallel()

	iss := statlog.Issues{
		{Path: "/", Code: statlog.CodeInvalidType},
		{Path: "/unit_id/0", Code: statlog.CodeRequired},
		{Path: "kind", Code: statlog.CodeDiscriminatorMissing},
	}
	got := iss.Rebase("/change_details")
	require.Equal(t, []string{"/change_details", "/change_details/unit_id/0", "/change_details/kind"},
		[]string{got[0].Path, got[1].Path, got[2].Path})
	require.Equal(t, "/", iss[0].Path, "original is left untouched")

	require.Equal(t, iss, iss.Rebase("/"))
}

func TestIssuesSortAndHas(t *testing.T) {
	t.Parallel()

	iss := statlog.Issues{
		{Path: "/b", Code: statlog.CodeRequired},
		{Path: "/a", Code: statlog.CodeUnknownKey},
		{Path: "/a", Code: statlog.CodeInvalidType},
	}
	iss.Sort()
	require.Equal(t, []string{statlog.CodeInvalidType, statlog.CodeUnknownKey, statlog.CodeRequired}, iss.Codes())
	require.True(t, iss.Has("/b", statlog.CodeRequired))
	require.False(t, iss.Has("/b", statlog.CodeUnknownKey))
}

func TestAsIssues(t *testing.T) {
	t.Parallel()

	iss := statlog.Issues{{Path: "/x", Code: statlog.CodeRequired}}
	wrapped := fmt.Errorf("loading: %w", iss)

	got, ok := statlog.AsIssues(wrapped)
	require.True(t, ok)
	require.Equal(t, iss, got)

	_, ok = statlog.AsIssues(errors.New("plain"))
	require.False(t, ok)
	_, ok = statlog.AsIssues(nil)
	require.False(t, ok)
}

func TestToIssues(t *testing.T) {
	t.Parallel()

	require.Nil(t, statlog.ToIssues("/", nil))

	cause := errors.New("disk on fire")
	got := statlog.ToIssues("/field", cause)
	require.Len(t, got, 1)
	require.Equal(t, "/field", got[0].Path)
	require.Equal(t, statlog.CodeParseError, got[0].Code)
	require.ErrorIs(t, got[0].Cause, cause)
}

func TestPathRef(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", statlog.Root().Pointer())
	require.Equal(t, "/old_value/2/variable_name", statlog.Root().Field("old_value").Index(2).Field("variable_name").Pointer())
	require.Equal(t, "/a~1b/c~0d", statlog.Root().Field("a/b").Field("c~d").Pointer())
	require.Equal(t, "/x/1", statlog.At("/x/1").Pointer())
	require.Equal(t, "/", statlog.At("").Pointer())

	it := statlog.Root().Field("kind").Issue(statlog.CodeDiscriminatorUnknown, "", "got", "dir")
	require.Equal(t, "/kind", it.Path)
	require.NotEmpty(t, it.Message, "message comes from the catalog")
	require.Equal(t, "dir", it.Params["got"])
}
