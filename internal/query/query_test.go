package query

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Window
		wantSkip    int
	}{
		{"defaults", 0, 0, Window{Page: 1, Limit: 10}, 0},
		{"second page", 2, 10, Window{Page: 2, Limit: 10}, 10},
		{"negative page", -4, 5, Window{Page: 1, Limit: 5}, 0},
		{"limit above max", 3, 500, Window{Page: 3, Limit: 100}, 200},
		{"negative limit", 1, -1, Window{Page: 1, Limit: 1}, 0},
		{"max limit", 1, 100, Window{Page: 1, Limit: 100}, 0},
		{"page past int range", math.MaxInt/100 + 2, 100, Window{Page: math.MaxInt/100 + 2, Limit: 100}, math.MaxInt},
		{"largest page", math.MaxInt, 10, Window{Page: math.MaxInt, Limit: 10}, math.MaxInt},
		{"last countable page", math.MaxInt/100 + 1, 100, Window{Page: math.MaxInt/100 + 1, Limit: 100}, math.MaxInt / 100 * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.page, tt.limit)
			assert.Equal(t, tt.want, w)
			assert.Equal(t, tt.wantSkip, w.Skip())
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 34, TotalPages(100, 3))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "", NormalizeSearch("   "))
	assert.Equal(t, "phone", NormalizeSearch(" phone\t"))
}

func TestRegexPatternIsLiteral(t *testing.T) {
	pattern := RegexPattern("(a+)+$")
	re := regexp.MustCompile("(?i)" + pattern)

	assert.True(t, re.MatchString("xx(A+)+$yy"))
	assert.False(t, re.MatchString("aaaa"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%phone%", LikePattern("phone"))
	assert.Equal(t, `%50\%\_off\\%`, LikePattern(`50%_off\`))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("PHONE", "Smartphone", ""))
	assert.True(t, Matches("case", "", "Phone case"))
	assert.False(t, Matches("tablet", "Smartphone", "Phone case"))
	assert.False(t, Matches(".*", "Smartphone"))
}
