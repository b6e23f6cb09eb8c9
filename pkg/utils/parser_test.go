package utils_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

func newParser() *utils.QuotationParser {
	return utils.NewQuotationParser(logger.NewNopLogger())
}

func TestParse_SingleQuotation(t *testing.T) {
	t.Parallel()

	text := "tarifa usd 22286.00 + txs usd 594.00\nFee usd 50.00\nin 3%\nAF 459 14APR GRUCDG HS2 1915 #1115"

	res, err := newParser().Parse(text)
	require.NoError(t, err)
	require.False(t, res.IsMulti)
	require.Nil(t, res.Quotations)
	require.Equal(t, "22286.00", res.Fare.String())
	require.Equal(t, "594.00", res.BaseTax.String())
	require.Equal(t, "50.00", res.Fee.String())
	require.Len(t, res.All(), 1)
}

func TestParse_TwoBlocks(t *testing.T) {
	t.Parallel()

	text := "tarifa usd 1000.00 + txs usd 100.00\n" +
		"AF 459 14APR GRUCDG HS2 1915 #1115\n" +
		"==\n" +
		"tarifa eur 2.000,00 + txs eur 200,00\n" +
		"TP 088 22SEP GRULIS HK1 2315 #1230\n"

	res, err := newParser().Parse(text)
	require.NoError(t, err)
	require.True(t, res.IsMulti)
	require.Len(t, res.Quotations, 2)

	// flattened view is the first block
	require.Equal(t, utils.CurrencyUSD, res.Currency)
	require.Equal(t, "1000.00", res.Fare.String())

	require.Equal(t, utils.CurrencyEUR, res.Quotations[1].Currency)
	require.Equal(t, "2000.00", res.Quotations[1].Fare.String())
	require.Equal(t, []string{"TP 088 22SEP GRULIS HK1 2315 #1230"}, res.Quotations[1].SegmentLines)
	require.Len(t, res.All(), 2)
}

func TestParse_NoiseBlocksAreDiscarded(t *testing.T) {
	t.Parallel()

	text := "tarifa usd 1000.00 + txs usd 100.00\n" +
		"  ====  \n" +
		"obs: cliente VIP, enviar ate sexta\n" +
		"=====\n" +
		"TP 088 22SEP GRULIS HK1 2315 #1230\n"

	res, err := newParser().Parse(text)
	require.NoError(t, err)
	require.True(t, res.IsMulti)
	require.Len(t, res.Quotations, 2)
	require.Len(t, res.Quotations[0].FareLines, 1)
	require.Empty(t, res.Quotations[1].FareLines)
	require.Len(t, res.Quotations[1].SegmentLines, 1)
}

func TestParse_SingleSeparatedBlockFallsBackToWholeText(t *testing.T) {
	t.Parallel()

	text := "==\ntarifa usd 500 + txs usd 50\n==\n"

	res, err := newParser().Parse(text)
	require.NoError(t, err)
	require.False(t, res.IsMulti)
	require.Equal(t, "500.00", res.Fare.String())
}

func TestParse_NoUsableBlockFallsBackToWholeText(t *testing.T) {
	t.Parallel()

	res, err := newParser().Parse("bom dia\n==\nate logo\n")
	require.NoError(t, err)
	require.False(t, res.IsMulti)
	require.Empty(t, res.Quotations)
	require.Empty(t, res.FareLines)
}

func TestParse_InvalidAmountInBlock(t *testing.T) {
	t.Parallel()

	text := "tarifa usd 100 + txs usd 10\n==\ntarifa usd 1.2.3 + txs usd 10\n"

	_, err := newParser().Parse(text)
	require.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	blocks := utils.SplitBlocks("a\n==\n\n  \n==\nb\n = \nc")
	require.Equal(t, []string{"a", "b\n = \nc"}, blocks)
}

func TestParse_JSONShape(t *testing.T) {
	t.Parallel()

	res, err := newParser().Parse("tarifa usd 100 + txs usd 10 *chd\ntroca usd 25\n")
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, "USD", out["currency"])
	require.Equal(t, "25.00", out["penalty"])
	require.Equal(t, "0.00", out["fee"])
	require.NotContains(t, out, "quotations")
	require.NotContains(t, out, "isMulti")

	fares := out["fareLines"].([]any)
	require.Len(t, fares, 1)
	require.Equal(t, map[string]any{"category": "CHD", "fare": "100.00", "tax": "10.00"}, fares[0])
}

func TestParse_FieldOnlyFooterBlockIsKept(t *testing.T) {
	t.Parallel()

	// "fee 50" and "2pc 23kg" fit the 2-4 character segment-line shape, so a
	// footer made of them survives as its own quotation.
	text := "tarifa usd 1000.00 + txs usd 100.00\n" +
		"AF 459 14APR GRUCDG HS2 1915 #1115\n" +
		"==\n" +
		"fee 50\n" +
		"2pc 23kg\n"

	res, err := newParser().Parse(text)
	require.NoError(t, err)
	require.True(t, res.IsMulti)
	require.Len(t, res.Quotations, 2)
	require.Empty(t, res.Quotations[1].FareLines)
	require.Equal(t, []string{"fee 50", "2pc 23kg"}, res.Quotations[1].SegmentLines)
	require.Equal(t, "50.00", res.Quotations[1].Fee.String())
}
