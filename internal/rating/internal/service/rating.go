// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/netflex/internal/pkg/authz"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/rating/internal/domain"
	"github.com/ecodeclub/netflex/internal/rating/internal/repository"
	"github.com/ecodeclub/netflex/internal/video"
)

//go:generate mockgen -source=./rating.go -package=ratingmocks -destination=../../mocks/rating.mock.go RatingService
type RatingService interface {
	// AddRating 重复评分会覆盖之前的分数
	AddRating(ctx context.Context, actor authz.Identity, r domain.Rating) (domain.Rating, error)
	// DeleteRating 没有评过分也视为成功
	DeleteRating(ctx context.Context, uid, videoID int64) error
	Summary(ctx context.Context, videoID, viewer int64) (domain.Summary, error)
}

type ratingService struct {
	repo     repository.RatingRepository
	videoSvc video.VideoService
}

func NewRatingService(repo repository.RatingRepository, videoSvc video.VideoService) RatingService {
	return &ratingService{
		repo:     repo,
		videoSvc: videoSvc,
	}
}

func (s *ratingService) AddRating(ctx context.Context, actor authz.Identity, r domain.Rating) (domain.Rating, error) {
	if !r.Valid() {
		return domain.Rating{}, errs.Newf(errs.Validation,
			"Rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	if _, err := s.videoSvc.FindByID(ctx, r.VideoID); err != nil {
		return domain.Rating{}, err
	}
	r.Uid = actor.Uid
	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("保存评分失败: %w", err)
	}
	return saved, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, uid, videoID int64) error {
	if err := s.repo.Delete(ctx, uid, videoID); err != nil {
		return fmt.Errorf("删除评分失败: %w", err)
	}
	return nil
}

func (s *ratingService) Summary(ctx context.Context, videoID, viewer int64) (domain.Summary, error) {
	if _, err := s.videoSvc.FindByID(ctx, videoID); err != nil {
		return domain.Summary{}, err
	}
	res, err := s.repo.Summary(ctx, videoID, viewer)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("查询评分失败: %w", err)
	}
	return res, nil
}
