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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/netflex/internal/rating/internal/domain"
	"github.com/ecodeclub/netflex/internal/rating/internal/repository/dao"
)

//go:generate mockgen -source=./rating.go -package=repomocks -destination=./mocks/rating.mock.go RatingRepository
type RatingRepository interface {
	Save(ctx context.Context, r domain.Rating) (domain.Rating, error)
	Delete(ctx context.Context, uid, videoID int64) error
	// Summary uid 为 0 时不查询个人评分
	Summary(ctx context.Context, videoID, uid int64) (domain.Summary, error)
}

type ratingRepository struct {
	dao dao.RatingDAO
}

func NewRatingRepository(d dao.RatingDAO) RatingRepository {
	return &ratingRepository{dao: d}
}

func (r *ratingRepository) Save(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	err := r.dao.Upsert(ctx, dao.VideoRating{
		Uid:     rating.Uid,
		VideoID: rating.VideoID,
		Rating:  rating.Rating,
	})
	if err != nil {
		return domain.Rating{}, err
	}
	saved, err := r.dao.Find(ctx, rating.Uid, rating.VideoID)
	if err != nil {
		return domain.Rating{}, err
	}
	return r.toDomain(saved), nil
}

func (r *ratingRepository) Delete(ctx context.Context, uid, videoID int64) error {
	return r.dao.Delete(ctx, uid, videoID)
}

func (r *ratingRepository) Summary(ctx context.Context, videoID, uid int64) (domain.Summary, error) {
	stats, err := r.dao.Stats(ctx, videoID)
	if err != nil {
		return domain.Summary{}, err
	}
	res := domain.Summary{
		VideoID: videoID,
		Average: stats.Avg,
		Count:   stats.Cnt,
	}
	if uid <= 0 {
		return res, nil
	}
	mine, err := r.dao.Find(ctx, uid, videoID)
	switch {
	case err == nil:
		res.MyRating = mine.Rating
	case !errors.Is(err, dao.ErrRecordNotFound):
		return domain.Summary{}, err
	}
	return res, nil
}

func (r *ratingRepository) toDomain(v dao.VideoRating) domain.Rating {
	return domain.Rating{
		ID:      v.ID,
		Uid:     v.Uid,
		VideoID: v.VideoID,
		Rating:  v.Rating,
		Utime:   v.Utime,
	}
}
