package vercomp

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestFromFilepath(t *testing.T) {
	testCases := []struct {
		Name     string
		Path     string
		Expected AndroidVersion
	}{
		{Name: "major_and_qpr", Path: "/15.2/foo/bar.zip", Expected: AndroidVersion{Major: 15, Minor: 2}},
		{Name: "major_only", Path: "/14/foo/bar.zip", Expected: AndroidVersion{Major: 14}},
		{Name: "zero_minor", Path: "/15.0/x1/rom.zip", Expected: AndroidVersion{Major: 15}},
		{Name: "two_digit_minor", Path: "/15.10/x1/rom.zip", Expected: AndroidVersion{Major: 15, Minor: 10}},
		{Name: "no_leading_number", Path: "/builds/x1/rom.zip", Expected: AndroidVersion{}},
		{Name: "no_leading_slash", Path: "15/x1/rom.zip", Expected: AndroidVersion{}},
		{Name: "no_trailing_directory", Path: "/15.2", Expected: AndroidVersion{}},
		{Name: "overflow", Path: "/99999999999999999999999/x1/rom.zip", Expected: AndroidVersion{}},
		{Name: "empty", Path: "", Expected: AndroidVersion{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, FromFilepath(tc.Path))
		})
	}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		Name     string
		A, B     AndroidVersion
		Expected int
	}{
		{Name: "15.2_greater_than_15", A: AndroidVersion{15, 2}, B: AndroidVersion{15, 0}, Expected: Greater},
		{Name: "14_less_than_15", A: AndroidVersion{14, 0}, B: AndroidVersion{15, 0}, Expected: Less},
		{Name: "15.10_greater_than_15.2", A: AndroidVersion{15, 10}, B: AndroidVersion{15, 2}, Expected: Greater},
		{Name: "15.10_not_equal_15.1", A: AndroidVersion{15, 10}, B: AndroidVersion{15, 1}, Expected: Greater},
		{Name: "unknown_is_lowest", A: AndroidVersion{}, B: AndroidVersion{9, 0}, Expected: Less},
		{Name: "equal", A: AndroidVersion{16, 1}, B: AndroidVersion{16, 1}, Expected: Equal},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, tc.A.Compare(tc.B))
		})
	}
}

func TestLabels(t *testing.T) {
	require.Equal(t, "15.2", AndroidVersion{15, 2}.String())
	require.Equal(t, "14", AndroidVersion{14, 0}.String())
	require.Equal(t, "0", AndroidVersion{}.String())
	require.Equal(t, "15 (QPR2)", AndroidVersion{15, 2}.Display())
	require.Equal(t, "14", AndroidVersion{14, 0}.Display())
}

func TestMatches(t *testing.T) {
	v := AndroidVersion{Major: 15, Minor: 2}

	require.True(t, v.Matches("15.2"))
	require.True(t, AndroidVersion{Major: 15}.Matches("15"))
	require.True(t, AndroidVersion{Major: 15}.Matches("15.0"))
	require.False(t, v.Matches("15"))
	require.False(t, v.Matches("lineage-22.1"))
	require.False(t, AndroidVersion{}.Matches("0"))
}

func TestJSON(t *testing.T) {
	b, err := AndroidVersion{15, 2}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"15.2"`, string(b))

	var v AndroidVersion
	require.NoError(t, v.UnmarshalJSON([]byte(`"15.10"`)))
	require.Equal(t, AndroidVersion{Major: 15, Minor: 10}, v)

	require.NoError(t, v.UnmarshalJSON([]byte("14")))
	require.Equal(t, AndroidVersion{Major: 14}, v)

	require.NoError(t, v.UnmarshalJSON([]byte("0")))
	require.True(t, v.IsZero())

	require.Error(t, v.UnmarshalJSON([]byte(`"tiramisu"`)))
}

func TestJSONKeepsTwoDigitQPR(t *testing.T) {
	type wrapper struct {
		V AndroidVersion `json:"v"`
	}

	tenth, err := sonic.Marshal(wrapper{V: AndroidVersion{15, 10}})
	require.NoError(t, err)
	first, err := sonic.Marshal(wrapper{V: AndroidVersion{15, 1}})
	require.NoError(t, err)
	require.Equal(t, `{"v":"15.10"}`, string(tenth))

	var a, b map[string]any
	require.NoError(t, sonic.Unmarshal(tenth, &a))
	require.NoError(t, sonic.Unmarshal(first, &b))
	require.Equal(t, "15.10", a["v"])
	require.NotEqual(t, a["v"], b["v"])

	var back wrapper
	require.NoError(t, sonic.Unmarshal(tenth, &back))
	require.Equal(t, AndroidVersion{Major: 15, Minor: 10}, back.V)
}
