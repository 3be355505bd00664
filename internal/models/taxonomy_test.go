package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyValues(t *testing.T) {
	tests := []struct {
		kind  TaxonomyKind
		count int
	}{
		{TaxonomyMBTI, 16},
		{TaxonomyEnneagram, 18},
		{TaxonomyZodiac, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			values, ok := TaxonomyValues(tt.kind)
			require.True(t, ok)
			assert.Len(t, values, tt.count)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		values, ok := TaxonomyValues(TaxonomyKind("horoscope"))
		assert.False(t, ok)
		assert.Nil(t, values)
	})

	t.Run("empty kind", func(t *testing.T) {
		_, ok := TaxonomyValues(TaxonomyKind(""))
		assert.False(t, ok)
	})
}

func TestTaxonomyMembers(t *testing.T) {
	assert.Contains(t, MBTITypes, "INTP")
	assert.Contains(t, MBTITypes, "ESFJ")
	assert.Contains(t, EnneagramTypes, "5w6")
	assert.Contains(t, EnneagramTypes, "1w2")
	assert.Contains(t, ZodiacSigns, "Aries")
	assert.Contains(t, ZodiacSigns, "Pisces")
}

func TestProfileCommentIDs(t *testing.T) {
	profile := Profile{
		Comments: []Comment{{ID: 4}, {ID: 9}, {ID: 11}},
	}
	assert.Equal(t, []uint{4, 9, 11}, profile.CommentIDs())

	empty := Profile{}
	assert.Empty(t, empty.CommentIDs())
}
