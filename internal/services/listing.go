package services

import (
	"sort"
	"time"

	"linker/internal/db"
	"linker/internal/models"
)

// Listing sort modes.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// PopularMinScraps is the scrap floor a post needs to show up in
// popular listings.
const PopularMinScraps = 2

// BoardPost is one row of a merged board listing. Exactly one of
// Recruit / Seeking is set; Kind tells which.
type BoardPost struct {
	Kind    string
	Recruit *models.RecruitmentPost
	Seeking *models.TeamSeekingPost
}

func (b BoardPost) ID() uint {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.ID
	}
	return b.Seeking.ID
}

func (b BoardPost) Title() string {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Title
	}
	return b.Seeking.Title
}

func (b BoardPost) WriterName() string {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Writer.Nickname
	}
	return b.Seeking.Writer.Nickname
}

func (b BoardPost) Scraps() int {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Scraps
	}
	return b.Seeking.Scraps
}

func (b BoardPost) Views() int {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Views
	}
	return b.Seeking.Views
}

func (b BoardPost) Comments() int {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Comments
	}
	return b.Seeking.Comments
}

func (b BoardPost) Hashtags() models.StringList {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Hashtags
	}
	return b.Seeking.Hashtags
}

func (b BoardPost) Deadline() time.Time {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.Deadline
	}
	return b.Seeking.Deadline
}

func (b BoardPost) CreatedAt() time.Time {
	if b.Kind == models.PostKindRecruit {
		return b.Recruit.CreatedAt
	}
	return b.Seeking.CreatedAt
}

// IsSeeking reports whether the row is a team-seeking post, which
// templates use to build the /seek/:id detail link.
func (b BoardPost) IsSeeking() bool {
	return b.Kind == models.PostKindSeeking
}

// ListBoard returns the merged recruit + seeking listing for the given
// board categories. SortPopular keeps only posts with at least
// PopularMinScraps scraps and orders by scraps, then views, then
// recency; everything else is recency order.
func ListBoard(categories []string, sortMode string) ([]BoardPost, error) {
	popular := sortMode == SortPopular

	recruitQ := db.DB.Preload("Writer").Where("category IN ?", categories)
	seekingQ := db.DB.Preload("Writer").Where("category IN ?", categories)
	if popular {
		recruitQ = recruitQ.Where("scraps >= ?", PopularMinScraps).
			Order("scraps DESC, views DESC, created_at DESC")
		seekingQ = seekingQ.Where("scraps >= ?", PopularMinScraps).
			Order("scraps DESC, views DESC, created_at DESC")
	} else {
		recruitQ = recruitQ.Order("created_at DESC")
		seekingQ = seekingQ.Order("created_at DESC")
	}

	var recruits []models.RecruitmentPost
	if err := recruitQ.Find(&recruits).Error; err != nil {
		return nil, err
	}
	var seekings []models.TeamSeekingPost
	if err := seekingQ.Find(&seekings).Error; err != nil {
		return nil, err
	}

	merged := mergeBoard(recruits, seekings)
	sortBoard(merged, popular)
	return merged, nil
}

// PopularBoard returns up to limit popular posts for the given board,
// merged across both kinds. Used for the home page blocks.
func PopularBoard(categories []string, limit int) ([]BoardPost, error) {
	var recruits []models.RecruitmentPost
	if err := db.DB.Preload("Writer").
		Where("category IN ? AND scraps >= ?", categories, PopularMinScraps).
		Order("scraps DESC, views DESC, created_at DESC").
		Limit(limit).
		Find(&recruits).Error; err != nil {
		return nil, err
	}
	var seekings []models.TeamSeekingPost
	if err := db.DB.Preload("Writer").
		Where("category IN ? AND scraps >= ?", categories, PopularMinScraps).
		Order("scraps DESC, views DESC, created_at DESC").
		Limit(limit).
		Find(&seekings).Error; err != nil {
		return nil, err
	}

	merged := mergeBoard(recruits, seekings)
	sortBoard(merged, true)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// ListCommunity returns community posts, newest first, filtered by
// category when one is given.
func ListCommunity(category string) ([]models.CommunityPost, error) {
	q := db.DB.Preload("Writer").Order("created_at DESC")
	if models.ValidCommunityCategory(category) {
		q = q.Where("category = ?", category)
	}
	var posts []models.CommunityPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// MyCommunityPosts returns the user's latest community posts.
func MyCommunityPosts(userID uint, limit int) ([]models.CommunityPost, error) {
	var posts []models.CommunityPost
	if err := db.DB.Preload("Writer").
		Where("writer_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ScrappedPosts returns the posts the user has scrapped, both kinds
// merged newest first, fetching up to limit of each kind.
func ScrappedPosts(userID uint, limit int) ([]BoardPost, error) {
	var recruits []models.RecruitmentPost
	if err := db.DB.Preload("Writer").
		Where("scrapped_by @> ?::jsonb", jsonbMember(userID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&recruits).Error; err != nil {
		return nil, err
	}
	var seekings []models.TeamSeekingPost
	if err := db.DB.Preload("Writer").
		Where("scrapped_by @> ?::jsonb", jsonbMember(userID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&seekings).Error; err != nil {
		return nil, err
	}

	merged := mergeBoard(recruits, seekings)
	sortBoard(merged, false)
	return merged, nil
}

func mergeBoard(recruits []models.RecruitmentPost, seekings []models.TeamSeekingPost) []BoardPost {
	merged := make([]BoardPost, 0, len(recruits)+len(seekings))
	for i := range recruits {
		merged = append(merged, BoardPost{Kind: models.PostKindRecruit, Recruit: &recruits[i]})
	}
	for i := range seekings {
		merged = append(merged, BoardPost{Kind: models.PostKindSeeking, Seeking: &seekings[i]})
	}
	return merged
}

// sortBoard re-sorts a merged listing. The per-kind queries are already
// ordered; this fixes the interleaving across kinds.
func sortBoard(posts []BoardPost, popular bool) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if popular {
			if a.Scraps() != b.Scraps() {
				return a.Scraps() > b.Scraps()
			}
			if a.Views() != b.Views() {
				return a.Views() > b.Views()
			}
		}
		return a.CreatedAt().After(b.CreatedAt())
	})
}
