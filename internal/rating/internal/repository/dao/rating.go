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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type VideoRating struct {
	ID      int64 `gorm:"primaryKey,autoIncrement"`
	Uid     int64 `gorm:"not null;uniqueIndex:uniq_uid_video_id,priority:1"`
	VideoID int64 `gorm:"not null;uniqueIndex:uniq_uid_video_id,priority:2;index:idx_video_id"`
	Rating  int   `gorm:"type:tinyint;not null;comment:'1-5 分'"`
	Ctime   int64
	Utime   int64
}

func (VideoRating) TableName() string {
	return "video_ratings"
}

type Stats struct {
	Cnt int64
	Avg float64
}

type RatingDAO interface {
	// Upsert 按 (uid, video_id) 覆盖
	Upsert(ctx context.Context, r VideoRating) error
	Find(ctx context.Context, uid, videoID int64) (VideoRating, error)
	Delete(ctx context.Context, uid, videoID int64) error
	Stats(ctx context.Context, videoID int64) (Stats, error)
}

type GORMRatingDAO struct {
	db *egorm.Component
}

func NewGORMRatingDAO(db *egorm.Component) RatingDAO {
	return &GORMRatingDAO{db: db}
}

func (d *GORMRatingDAO) Upsert(ctx context.Context, r VideoRating) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating": r.Rating,
			"utime":  now,
		}),
	}).Create(&r).Error
}

func (d *GORMRatingDAO) Find(ctx context.Context, uid, videoID int64) (VideoRating, error) {
	var r VideoRating
	err := d.db.WithContext(ctx).
		Where("uid = ? AND video_id = ?", uid, videoID).
		First(&r).Error
	return r, err
}

func (d *GORMRatingDAO) Delete(ctx context.Context, uid, videoID int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND video_id = ?", uid, videoID).
		Delete(&VideoRating{}).Error
}

func (d *GORMRatingDAO) Stats(ctx context.Context, videoID int64) (Stats, error) {
	var res Stats
	err := d.db.WithContext(ctx).Model(&VideoRating{}).
		Select("COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg").
		Where("video_id = ?", videoID).
		Scan(&res).Error
	return res, err
}
