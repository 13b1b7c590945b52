package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalesChannel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SalesChannel
		wantErr  bool
	}{
		{name: "empty defaults to all", input: "", expected: ChannelAll},
		{name: "all", input: "all", expected: ChannelAll},
		{name: "retail", input: "retail", expected: ChannelRetail},
		{name: "wholesale", input: "wholesale", expected: ChannelWholesale},
		{name: "unknown value is rejected", input: "online", wantErr: true},
		{name: "case is not folded", input: "Retail", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSalesChannel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
