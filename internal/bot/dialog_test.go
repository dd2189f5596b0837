package bot

import (
	"testing"

	"autoquote-bot/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuestionsFor_EveryOptionHasALabel(t *testing.T) {
	for _, calc := range pricing.New(zap.NewNop()).Services() {
		qs := questionsFor(calc)
		require.Len(t, qs, len(calc.Fields))
		for _, q := range qs {
			assert.NotEmpty(t, prompts[q.Key], q.Key)
			for _, o := range q.Options {
				assert.NotEqual(t, o.Value, o.Label, "%s/%s", q.Key, o.Value)
			}
		}
		assert.Equal(t, pricing.ParamCustomerType, qs[len(qs)-1].Key)
	}
}

func TestMatchOption(t *testing.T) {
	opts := []option{{Label: "🚗 Car", Value: "car"}, {Label: "🚙 SUV", Value: "suv"}}

	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{"🚗 Car", "car", true},
		{"  suv ", "suv", true},
		{"SUV", "suv", true},
		{"🚙 suv", "suv", true},
		{"bus", "", false},
	}

	for _, tt := range tests {
		got, ok := matchOption(opts, tt.text)
		assert.Equal(t, tt.found, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestServiceOptions(t *testing.T) {
	opts := serviceOptions(pricing.New(zap.NewNop()).Services())
	require.Len(t, opts, 4)
	assert.Equal(t, option{Label: "🔧 Paint correction", Value: "paintCorrection"}, opts[3])
}
