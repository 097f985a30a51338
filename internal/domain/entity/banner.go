package entity

import (
	"strings"
	"time"
)

// BannerType selects which storefront slot a banner fills.
type BannerType string

const (
	BannerHomepage BannerType = "homepage"
	BannerWeekly   BannerType = "weekly"
	BannerPopular  BannerType = "popular"
	BannerBrand    BannerType = "brand"
)

// BannerTypes lists the tabs in display order.
func BannerTypes() []BannerType {
	return []BannerType{BannerHomepage, BannerWeekly, BannerPopular, BannerBrand}
}

// ParseBannerType normalises user input into a BannerType.
func ParseBannerType(raw string) (BannerType, bool) {
	t := BannerType(strings.ToLower(strings.TrimSpace(raw)))

	return t, t.IsValid()
}

// IsValid checks if the type is a known value.
func (t BannerType) IsValid() bool {
	switch t {
	case BannerHomepage, BannerWeekly, BannerPopular, BannerBrand:
		return true
	default:
		return false
	}
}

// Banner is a promotional image shown on the storefront.
type Banner struct {
	ID        string     `json:"id"`
	Type      BannerType `json:"type"`
	Title     string     `json:"title"`
	Image     string     `json:"image"`
	CreatedAt time.Time  `json:"created_at"`
}

// BannerDraft is the form payload of a banner create.
type BannerDraft struct {
	Type  BannerType   `json:"type" validate:"required"`
	Title string       `json:"title" validate:"required"`
	Image *ImageUpload `json:"-"`
}

// BannerTab groups the banners of one type along with its cap.
type BannerTab struct {
	Type    BannerType `json:"type"`
	Banners []*Banner  `json:"banners"`
	Count   int        `json:"count"`
	Limit   int        `json:"limit"`
	CanAdd  bool       `json:"can_add"`
}

// NewBannerTab builds a tab and derives whether another banner fits.
func NewBannerTab(bannerType BannerType, banners []*Banner, limit int) *BannerTab {
	if banners == nil {
		banners = []*Banner{}
	}

	return &BannerTab{
		Type:    bannerType,
		Banners: banners,
		Count:   len(banners),
		Limit:   limit,
		CanAdd:  len(banners) < limit,
	}
}
