package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBannerTab_CanAddUntilLimit(t *testing.T) {
	two := []*Banner{{ID: "b1"}, {ID: "b2"}}
	three := append(two, &Banner{ID: "b3"})

	assert.True(t, NewBannerTab(BannerHomepage, two, 3).CanAdd)

	full := NewBannerTab(BannerHomepage, three, 3)
	assert.False(t, full.CanAdd)
	assert.Equal(t, 3, full.Count)
	assert.Equal(t, 3, full.Limit)
}

func TestNewBannerTab_EmptyTab(t *testing.T) {
	tab := NewBannerTab(BannerBrand, nil, 10)

	assert.NotNil(t, tab.Banners)
	assert.True(t, tab.CanAdd)
}

func TestParseBannerType(t *testing.T) {
	got, ok := ParseBannerType(" Homepage ")
	assert.True(t, ok)
	assert.Equal(t, BannerHomepage, got)

	_, ok = ParseBannerType("sidebar")
	assert.False(t, ok)
}
