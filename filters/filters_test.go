package filters

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"RealEstateBackend/models"
)

var fixture = []bson.M{
	{
		"title":         "Modern Family House",
		"description":   "Spacious 4-bedroom home with open floor plan and large backyard.",
		"price":         549000.0,
		"city":          "Springfield",
		"state":         "IL",
		"bedrooms":      4,
		"bathrooms":     2.5,
		"property_type": "House",
		"featured":      true,
	},
	{
		"title":         "Downtown City Apartment",
		"description":   "Stylish 2-bed apartment close to shops, cafes, and public transit.",
		"price":         329000.0,
		"city":          "Metro City",
		"state":         "NY",
		"bedrooms":      2,
		"bathrooms":     1.0,
		"property_type": "Apartment",
		"featured":      true,
	},
	{
		"title":         "Cozy Suburban Condo",
		"description":   "Bright 1-bedroom condo with balcony and community pool.",
		"price":         189000.0,
		"city":          "Lakeside",
		"state":         "CA",
		"bedrooms":      1,
		"bathrooms":     1.0,
		"property_type": "Condo",
		"featured":      false,
	},
}

func TestBuildEmptyCriteriaMatchesEverything(t *testing.T) {
	query := Build(models.FilterCriteria{})
	assert.Empty(t, query)
	assert.Len(t, selectDocs(t, query), len(fixture))
}

func TestBuildPriceRangeInclusive(t *testing.T) {
	min, max := 200000.0, 400000.0
	query := Build(models.FilterCriteria{MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, bson.M{"price": bson.M{"$gte": min, "$lte": max}}, query)

	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Downtown City Apartment"}, titles)

	// Bounds are inclusive on both ends.
	exact := 329000.0
	query = Build(models.FilterCriteria{MinPrice: &exact, MaxPrice: &exact})
	assert.Len(t, selectDocs(t, query), 1)
}

func TestBuildFreeTextSearchesFourFields(t *testing.T) {
	q := "pool"
	query := Build(models.FilterCriteria{Query: &q})

	or, ok := query["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 4)

	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Cozy Suburban Condo"}, titles)

	state := "ny"
	query = Build(models.FilterCriteria{Query: &state})
	titles = titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Downtown City Apartment"}, titles)

	missing := "lighthouse"
	query = Build(models.FilterCriteria{Query: &missing})
	assert.Empty(t, selectDocs(t, query))
}

func TestBuildCitySubstringMatch(t *testing.T) {
	city := "metro"
	query := Build(models.FilterCriteria{City: &city})

	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Downtown City Apartment"}, titles)
}

func TestBuildPropertyTypeExactMatch(t *testing.T) {
	propertyType := "house"
	query := Build(models.FilterCriteria{PropertyType: &propertyType})

	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Modern Family House"}, titles)

	// Substrings of the field value must not match.
	partial := "hou"
	query = Build(models.FilterCriteria{PropertyType: &partial})
	assert.Empty(t, selectDocs(t, query))
}

func TestBuildMinimumRooms(t *testing.T) {
	bedrooms := 2
	query := Build(models.FilterCriteria{Bedrooms: &bedrooms})
	assert.Len(t, selectDocs(t, query), 2)

	bathrooms := 2.5
	query = Build(models.FilterCriteria{Bathrooms: &bathrooms})
	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Modern Family House"}, titles)
}

func TestBuildFeaturedFlag(t *testing.T) {
	featured := true
	query := Build(models.FilterCriteria{Featured: &featured})
	assert.Equal(t, bson.M{"featured": true}, query)
	assert.Len(t, selectDocs(t, query), 2)

	featured = false
	query = Build(models.FilterCriteria{Featured: &featured})
	assert.Len(t, selectDocs(t, query), 1)
}

func TestBuildCombinesCriteriaWithAnd(t *testing.T) {
	featured := true
	bedrooms := 4
	query := Build(models.FilterCriteria{Featured: &featured, Bedrooms: &bedrooms})

	titles := titlesOf(selectDocs(t, query))
	assert.Equal(t, []string{"Modern Family House"}, titles)
}

// selectDocs evaluates a built query against the in-memory fixture the way
// the document store would, covering the operators Build emits.
func selectDocs(t *testing.T, query bson.M) []bson.M {
	t.Helper()
	var matched []bson.M
	for _, doc := range fixture {
		if matchesQuery(t, query, doc) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func matchesQuery(t *testing.T, query bson.M, doc bson.M) bool {
	t.Helper()
	for key, cond := range query {
		if key == "$or" {
			anyMatch := false
			for _, branch := range cond.([]bson.M) {
				if matchesQuery(t, branch, doc) {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false
			}
			continue
		}
		if !matchesCondition(t, cond, doc[key]) {
			return false
		}
	}
	return true
}

func matchesCondition(t *testing.T, cond, value interface{}) bool {
	t.Helper()
	ops, ok := cond.(bson.M)
	if !ok {
		return cond == value
	}
	for op, operand := range ops {
		switch op {
		case "$regex":
			pattern := operand.(string)
			if ops["$options"] == "i" {
				pattern = "(?i)" + pattern
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				t.Fatalf("bad regex %q: %v", pattern, err)
			}
			if !re.MatchString(fmt.Sprintf("%v", value)) {
				return false
			}
		case "$options":
			// handled with $regex
		case "$gte":
			if asFloat(t, value) < asFloat(t, operand) {
				return false
			}
		case "$lte":
			if asFloat(t, value) > asFloat(t, operand) {
				return false
			}
		default:
			t.Fatalf("unsupported operator %q", op)
		}
	}
	return true
}

func asFloat(t *testing.T, value interface{}) float64 {
	t.Helper()
	switch v := value.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	default:
		t.Fatalf("unsupported numeric type %T", value)
		return 0
	}
}

func titlesOf(docs []bson.M) []string {
	var titles []string
	for _, doc := range docs {
		titles = append(titles, doc["title"].(string))
	}
	return titles
}
