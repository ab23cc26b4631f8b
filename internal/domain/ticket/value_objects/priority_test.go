package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"low", false},
		{"medium", false},
		{"high", false},
		{"urgent", false},
		{"", true},
		{"critical", true},
		{"HIGH", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := NewPriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
			assert.True(t, p.IsValid())
		})
	}
}

func TestPriority_Predicates(t *testing.T) {
	assert.True(t, PriorityLow.IsLow())
	assert.True(t, PriorityMedium.IsMedium())
	assert.True(t, PriorityHigh.IsHigh())
	assert.True(t, PriorityUrgent.IsUrgent())
	assert.False(t, PriorityLow.IsHigh())
}

func TestPriorities(t *testing.T) {
	all := Priorities()
	assert.Len(t, all, 4)
	for _, p := range all {
		assert.True(t, p.IsValid())
	}
}
