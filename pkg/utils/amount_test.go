package utils_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"pnr-quote-service/pkg/utils"
)

func TestResolveSeparators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"22.286,00", "22286.00"},
		{"22,286.00", "22286.00"},
		{"564,00", "564.00"},
		{"400", "400"},
		{"594.00", "594.00"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567.89", "1234567.89"},
		{" 12,5 ", "12.5"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, utils.ResolveSeparators(tc.in))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"22.286,00", "22286.00"},
		{"22,286.00", "22286.00"},
		{"564,00", "564.00"},
		{"400", "400.00"},
		{"0,005", "0.01"},
		{"2,345", "2.35"},
		{"2.344", "2.34"},
		{"1.234.567,891", "1234567.89"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := utils.NormalizeAmount(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNormalizeAmount_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "1.2.3", "1,2,3", "12a"} {
		_, err := utils.NormalizeAmount(in)
		require.ErrorIsf(t, err, utils.ErrInvalidAmount, "input %q", in)
	}
}

func TestNormalizeAmount_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"22.286,00", "22,286.00", "564,00", "400", "0,005", "99.999"} {
		once, err := utils.NormalizeAmount(in)
		require.NoError(t, err)

		twice, err := utils.NormalizeAmount(once.String())
		require.NoError(t, err)
		require.Equal(t, once.String(), twice.String(), "input %q", in)
	}
}

func TestAmount_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(utils.MustAmount("22286"))
	require.NoError(t, err)
	require.JSONEq(t, `"22286.00"`, string(b))

	var a utils.Amount
	require.NoError(t, json.Unmarshal([]byte(`"564,00"`), &a))
	require.Equal(t, "564.00", a.String())

	require.NoError(t, json.Unmarshal([]byte(`12.5`), &a))
	require.Equal(t, "12.50", a.String())

	require.Error(t, json.Unmarshal([]byte(`"x"`), &a))
}

func TestNormalizeAmount_RejectsNonPlainNumerals(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1e3", "1E3", "2.5e-1", "0x10", "Inf", "NaN"} {
		t.Run(in, func(t *testing.T) {
			_, err := utils.NormalizeAmount(in)
			require.ErrorIs(t, err, utils.ErrInvalidAmount)

			var a utils.Amount
			require.ErrorIs(t, json.Unmarshal([]byte(`"`+in+`"`), &a), utils.ErrInvalidAmount)
		})
	}

	for _, in := range []string{"-1", "+5", ".5"} {
		_, err := utils.NormalizeAmount(in)
		require.NoErrorf(t, err, "input %q", in)
	}
}
