package models

// Personality taxonomies used as comment tags and query filters.

// MBTITypes lists the sixteen Myers-Briggs types.
var MBTITypes = []string{
	"INFP", "INFJ", "ENFP", "ENFJ",
	"INTJ", "INTP", "ENTP", "ENTJ",
	"ISFP", "ISFJ", "ESFP", "ESFJ",
	"ISTP", "ISTJ", "ESTP", "ESTJ",
}

// EnneagramTypes lists the eighteen enneagram wing types.
var EnneagramTypes = []string{
	"1w2", "2w3", "3w2", "3w4", "4w3", "4w5",
	"5w4", "5w6", "6w5", "6w7", "7w6", "7w8",
	"8w7", "8w9", "9w8", "9w1", "1w9", "2w1",
}

// ZodiacSigns lists the twelve zodiac signs.
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// TaxonomyKind identifies one of the fixed personality taxonomies.
type TaxonomyKind string

const (
	TaxonomyMBTI      TaxonomyKind = "mbti"
	TaxonomyEnneagram TaxonomyKind = "enneagram"
	TaxonomyZodiac    TaxonomyKind = "zodiac"
)

// TaxonomyValues returns the allow-list for the given taxonomy kind, or false
// when the kind is not one of the three fixed taxonomies.
func TaxonomyValues(kind TaxonomyKind) ([]string, bool) {
	switch kind {
	case TaxonomyMBTI:
		return MBTITypes, true
	case TaxonomyEnneagram:
		return EnneagramTypes, true
	case TaxonomyZodiac:
		return ZodiacSigns, true
	default:
		return nil, false
	}
}
