package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSex(t *testing.T) {
	tests := []struct {
		in   string
		want Sex
	}{
		{"M", SexMale},
		{"m", SexMale},
		{"Male", SexMale},
		{"MALE", SexMale},
		{"F", SexFemale},
		{"f", SexFemale},
		{"FEMALE", SexFemale},
		{"female", SexFemale},
		{"unknown", SexUnknown},
		{"", SexUnknown},
		{"1", SexUnknown},
		{"males", SexUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSex(tt.in))
		})
	}
}

func TestStore_UnknownSexLeavesFlags(t *testing.T) {
	s := NewStore()
	x := s.Add("X", Info{Sex: "unknown"})

	rec, err := s.RecordAt(x)
	assert.NoError(t, err)
	assert.False(t, rec.IsMale)
	assert.False(t, rec.IsFemale)
}
