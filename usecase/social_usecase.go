package usecase

import (
	"context"
	"sync"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
)

// ISocialUseCase fans out to both platforms and merges the results.
type ISocialUseCase interface {
	// GetAggregatedLatest fetches the newest content of both platforms
	// concurrently. It never fails as a whole; each branch carries its own
	// success flag.
	GetAggregatedLatest(ctx context.Context, videoLimit int64, postLimit int) *dto.AggregatedLatest
	TestAllConnections(ctx context.Context) *dto.ConnectionReport
	ClearAllCaches()
	CacheStatusAll() *dto.CacheStatusReport
}

// SocialUseCase composes the per-platform use cases.
type SocialUseCase struct {
	youtube   IYouTubeUseCase
	instagram IInstagramUseCase
}

// NewSocialUseCase creates a new social aggregation use case instance.
func NewSocialUseCase(youtube IYouTubeUseCase, instagram IInstagramUseCase) ISocialUseCase {
	return &SocialUseCase{youtube: youtube, instagram: instagram}
}

// GetAggregatedLatest fetches both platforms in parallel and waits for both
// to settle. A failed branch is reported in place; the other branch is
// unaffected.
func (u *SocialUseCase) GetAggregatedLatest(ctx context.Context, videoLimit int64, postLimit int) *dto.AggregatedLatest {
	result := &dto.AggregatedLatest{Timestamp: time.Now()}

	var wg sync.WaitGroup
	wg.Add(2)

	// Failed branches keep an empty item list so the JSON shape is stable
	// for consumers either way.
	go func() {
		defer wg.Done()
		videos, err := u.youtube.GetLatestVideos(ctx, videoLimit)
		if err != nil {
			result.YouTube = dto.PlatformVideos{Success: false, Videos: []model.Video{}, Error: err.Error()}
			return
		}
		if videos == nil {
			videos = []model.Video{}
		}
		result.YouTube = dto.PlatformVideos{Success: true, Videos: videos}
	}()

	go func() {
		defer wg.Done()
		posts, err := u.instagram.GetLatestPosts(ctx, postLimit)
		if err != nil {
			result.Instagram = dto.PlatformPosts{Success: false, Posts: []model.Post{}, Error: err.Error()}
			return
		}
		if posts == nil {
			posts = []model.Post{}
		}
		result.Instagram = dto.PlatformPosts{Success: true, Posts: posts}
	}()

	wg.Wait()
	return result
}

// TestAllConnections probes both platform APIs in parallel.
func (u *SocialUseCase) TestAllConnections(ctx context.Context) *dto.ConnectionReport {
	report := &dto.ConnectionReport{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		report.YouTube = u.youtube.TestConnection(ctx)
	}()
	go func() {
		defer wg.Done()
		report.Instagram = u.instagram.TestConnection(ctx)
	}()
	wg.Wait()

	return report
}

// ClearAllCaches drops the cached data of both platforms.
func (u *SocialUseCase) ClearAllCaches() {
	u.youtube.ClearCache()
	u.instagram.ClearCache()
}

// CacheStatusAll reports cache state for both platforms.
func (u *SocialUseCase) CacheStatusAll() *dto.CacheStatusReport {
	return &dto.CacheStatusReport{
		YouTube:   u.youtube.CacheStatus(),
		Instagram: u.instagram.CacheStatus(),
	}
}
