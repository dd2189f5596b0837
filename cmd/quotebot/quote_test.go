package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"autoquote-bot/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"vehicleType=suv", "tintRemoval=true", "windows="})
	require.NoError(t, err)
	assert.Equal(t, pricing.Params{"vehicleType": "suv", "tintRemoval": "true", "windows": ""}, params)

	_, err = parseParams([]string{"vehicleType"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=suv"})
	assert.Error(t, err)
}

func TestQuoteCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"quote", "ppf", "serviceType=full-front", "ppfType=standard"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var q pricing.Quote
	require.NoError(t, json.Unmarshal(out.Bytes(), &q))
	assert.Equal(t, 1480.0, q.TotalCost)
	assert.InDelta(t, 2748.57, q.FinalPrice, 0.01)
}

func TestQuoteCommand_UnknownService(t *testing.T) {
	rootCmd.SetArgs([]string{"quote", "detailing"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, pricing.ErrUnknownService)
}
