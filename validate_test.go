package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shamirerr "github.com/mrz1836/shamir-merkle/pkg/errors"
)

func TestValidateShareSetRejectsEmpty(t *testing.T) {
	_, err := validateShareSet(nil, false)
	require.Error(t, err)
}

func TestValidateShareSetRejectsInconsistentThreshold(t *testing.T) {
	shares := []Share{
		{Threshold: 3, Index: 1, Payload: []byte{1}},
		{Threshold: 2, Index: 2, Payload: []byte{2}},
	}
	_, err := validateShareSet(shares, false)
	require.Error(t, err)
}

func TestValidateShareSetRejectsOutOfRangeIndex(t *testing.T) {
	shares := []Share{
		{Threshold: 1, Index: 0, Payload: []byte{1}},
	}
	_, err := validateShareSet(shares, false)
	require.Error(t, err)
}

func TestValidateShareSetRejectsDuplicatesByDefault(t *testing.T) {
	shares := []Share{
		{Threshold: 1, Index: 1, Payload: []byte{1}},
		{Threshold: 1, Index: 1, Payload: []byte{1}},
	}
	_, err := validateShareSet(shares, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, shamirerr.ErrInconsistentShares)
}

func TestValidateShareSetDedupsWhenAllowed(t *testing.T) {
	shares := []Share{
		{Threshold: 2, Index: 1, Payload: []byte{1}},
		{Threshold: 2, Index: 1, Payload: []byte{1}},
		{Threshold: 2, Index: 2, Payload: []byte{2}},
	}
	got, err := validateShareSet(shares, true)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestValidateShareSetRejectsBelowThreshold(t *testing.T) {
	shares := []Share{
		{Threshold: 3, Index: 1, Payload: []byte{1}},
		{Threshold: 3, Index: 2, Payload: []byte{2}},
	}
	_, err := validateShareSet(shares, false)
	require.Error(t, err)
}
