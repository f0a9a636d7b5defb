package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPincodeRoundTrip(t *testing.T) {
	var b Bank
	b.SetPincodes([]string{"110001", "110002"})
	assert.Equal(t, "110001,110002", b.Pincodes)
	assert.Equal(t, []string{"110001", "110002"}, b.PincodeList())

	spaced := Bank{Pincodes: " 110001 ,  110002,,110001 "}
	assert.Equal(t, b.PincodeList(), spaced.PincodeList())
}

func TestHasPincode(t *testing.T) {
	b := Bank{Pincodes: "110001, 560001 "}
	assert.True(t, b.HasPincode("110001"))
	assert.True(t, b.HasPincode(" 560001"))
	assert.False(t, b.HasPincode("11000"))
	assert.False(t, b.HasPincode(""))
	assert.False(t, (&Bank{}).HasPincode("110001"))
}

func TestIsValidPincode(t *testing.T) {
	tests := map[string]bool{
		"110001":  true,
		"11000":   false,
		"1100012": false,
		"ABCDEF":  false,
		"11OO01":  false,
		"+11000":  false,
		"":        false,
	}
	for code, want := range tests {
		assert.Equal(t, want, IsValidPincode(code), code)
	}
}

func TestPartitionPincodes(t *testing.T) {
	valid, invalid := PartitionPincodes("110001, 12345,abcdef ,560001")
	assert.Equal(t, []string{"110001", "560001"}, valid)
	assert.Equal(t, []string{"12345", "abcdef"}, invalid)
}
