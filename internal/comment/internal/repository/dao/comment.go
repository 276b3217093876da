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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidParentID = errors.New("父评论ID非法")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

// Comment 表示针对某一视频的评论
type Comment struct {
	ID int64 `gorm:"autoIncrement,primaryKey;comment:'评论自增ID'"`

	Uid int64 `gorm:"not null;index;comment:'评论者'"`

	VideoID int64 `gorm:"not null;index:idx_video_id;comment:'评论的视频'"`

	Content string `gorm:"type:text;not null;comment:'评论的具体内容'"`

	// 这两个字段都可以为 NULL。如果是 NULL 就代表它自身就是一个顶层评论
	AncestorID sql.Null[int64] `gorm:"type:bigint;index:idx_ancestor_id;comment:'顶层评论ID，NULL表示对视频的直接评论'"`
	ParentID   sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id;comment:'父评论ID，NULL表示对视频的直接评论'"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

// CommentRating 一个用户对一条评论最多一条记录
type CommentRating struct {
	ID        int64 `gorm:"autoIncrement,primaryKey"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_uid_comment_id,priority:1"`
	CommentID int64 `gorm:"not null;uniqueIndex:uniq_uid_comment_id,priority:2;index:idx_comment_id"`
	// 1 点赞，-1 点踩
	Rating int8 `gorm:"type:tinyint;not null"`
	Utime  int64
	Ctime  int64
}

func (CommentRating) TableName() string {
	return "comment_ratings"
}

type RatingStats struct {
	CommentID int64
	Likes     int64
	Dislikes  int64
}

type CommentDAO interface {
	// Create 创建顶层评论或回复，回复的 AncestorID 在事务内计算
	Create(ctx context.Context, comment Comment) (Comment, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
	// FindByVideo 某个视频下的全部评论，按 ID 升序
	FindByVideo(ctx context.Context, videoID int64) ([]Comment, error)
	// FindByUser 某个用户发表的全部评论，按 ID 升序
	FindByUser(ctx context.Context, uid int64) ([]Comment, error)
	// FindThreads 指定顶层评论及其所有后代，按 ID 升序
	FindThreads(ctx context.Context, ancestorIDs []int64) ([]Comment, error)
	FindAll(ctx context.Context) ([]Comment, error)
	// Delete 在一个事务内删除评论以及针对它们的评价，返回删除的评论数
	Delete(ctx context.Context, ids []int64) (int64, error)

	RatingStats(ctx context.Context, commentIDs []int64) ([]RatingStats, error)
	UserRatings(ctx context.Context, uid int64, commentIDs []int64) ([]CommentRating, error)
	UpsertRating(ctx context.Context, r CommentRating) error
	DeleteRating(ctx context.Context, uid, commentID int64) error
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (Comment, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ancestorID int64
		// 当前评论是回复
		if c.ParentID.Valid {
			var parent Comment
			if err := tx.First(&parent, "id = ?", c.ParentID.V).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			// 父评论是顶层评论，那么它就是始祖；否则沿用父评论的始祖
			if !parent.ParentID.Valid {
				ancestorID = parent.ID
			} else {
				ancestorID = parent.AncestorID.V
			}
		}
		c.AncestorID = sql.Null[int64]{V: ancestorID, Valid: ancestorID != 0}
		return tx.Create(&c).Error
	})
	return c, err
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *commentDAO) FindByVideo(ctx context.Context, videoID int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindByUser(ctx context.Context, uid int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindThreads(ctx context.Context, ancestorIDs []int64) ([]Comment, error) {
	var res []Comment
	if len(ancestorIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("id IN ? OR ancestor_id IN ?", ancestorIDs, ancestorIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindAll(ctx context.Context) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *commentDAO) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN ?", ids).Delete(&CommentRating{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&Comment{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (g *commentDAO) RatingStats(ctx context.Context, commentIDs []int64) ([]RatingStats, error) {
	var res []RatingStats
	if len(commentIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Model(&CommentRating{}).
		Select("comment_id, " +
			"SUM(CASE WHEN rating > 0 THEN 1 ELSE 0 END) AS likes, " +
			"SUM(CASE WHEN rating < 0 THEN 1 ELSE 0 END) AS dislikes").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&res).Error
	return res, err
}

func (g *commentDAO) UserRatings(ctx context.Context, uid int64, commentIDs []int64) ([]CommentRating, error) {
	var res []CommentRating
	if len(commentIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("uid = ? AND comment_id IN ?", uid, commentIDs).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) UpsertRating(ctx context.Context, r CommentRating) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "comment_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating": r.Rating,
			"utime":  now,
		}),
	}).Create(&r).Error
}

func (g *commentDAO) DeleteRating(ctx context.Context, uid, commentID int64) error {
	return g.db.WithContext(ctx).
		Where("uid = ? AND comment_id = ?", uid, commentID).
		Delete(&CommentRating{}).Error
}
