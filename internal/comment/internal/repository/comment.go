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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/netflex/internal/comment/internal/domain"
	"github.com/ecodeclub/netflex/internal/comment/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCommentNotFound = dao.ErrRecordNotFound
	ErrInvalidParentID = dao.ErrInvalidParentID
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	FindByVideo(ctx context.Context, videoID int64) ([]domain.Comment, error)
	FindByUser(ctx context.Context, uid int64) ([]domain.Comment, error)
	// FindThreads 指定顶层评论所在讨论串的全部评论
	FindThreads(ctx context.Context, ancestorIDs []int64) ([]domain.Comment, error)
	FindAll(ctx context.Context) ([]domain.Comment, error)
	Delete(ctx context.Context, ids []int64) (int64, error)
	// Aggregate 填充点赞、点踩数，viewer 不为 0 时填充查看者自己的评价
	Aggregate(ctx context.Context, comments []domain.Comment, viewer int64) error
	Rate(ctx context.Context, uid, commentID int64, like bool) error
	Unrate(ctx context.Context, uid, commentID int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(dao dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: dao}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	c, err := r.dao.Create(ctx, r.toEntity(comment))
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) FindByVideo(ctx context.Context, videoID int64) ([]domain.Comment, error) {
	return r.toDomains(r.dao.FindByVideo(ctx, videoID))
}

func (r *commentRepository) FindByUser(ctx context.Context, uid int64) ([]domain.Comment, error) {
	return r.toDomains(r.dao.FindByUser(ctx, uid))
}

func (r *commentRepository) FindThreads(ctx context.Context, ancestorIDs []int64) ([]domain.Comment, error) {
	return r.toDomains(r.dao.FindThreads(ctx, ancestorIDs))
}

func (r *commentRepository) FindAll(ctx context.Context) ([]domain.Comment, error) {
	return r.toDomains(r.dao.FindAll(ctx))
}

func (r *commentRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	return r.dao.Delete(ctx, ids)
}

func (r *commentRepository) Aggregate(ctx context.Context, comments []domain.Comment, viewer int64) error {
	if len(comments) == 0 {
		return nil
	}
	ids := slice.Map(comments, func(_ int, src domain.Comment) int64 {
		return src.ID
	})
	var (
		eg      errgroup.Group
		stats   []dao.RatingStats
		ratings []dao.CommentRating
	)
	eg.Go(func() error {
		var err error
		stats, err = r.dao.RatingStats(ctx, ids)
		return err
	})
	if viewer > 0 {
		eg.Go(func() error {
			var err error
			ratings, err = r.dao.UserRatings(ctx, viewer, ids)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	statsMap := slice.ToMap(stats, func(s dao.RatingStats) int64 {
		return s.CommentID
	})
	ratingMap := slice.ToMap(ratings, func(cr dao.CommentRating) int64 {
		return cr.CommentID
	})
	for i := range comments {
		s := statsMap[comments[i].ID]
		comments[i].Likes, comments[i].Dislikes = s.Likes, s.Dislikes
		cr, ok := ratingMap[comments[i].ID]
		comments[i].LikedByUser = ok && cr.Rating > 0
		comments[i].DislikedByUser = ok && cr.Rating < 0
	}
	return nil
}

func (r *commentRepository) Rate(ctx context.Context, uid, commentID int64, like bool) error {
	var rating int8 = -1
	if like {
		rating = 1
	}
	return r.dao.UpsertRating(ctx, dao.CommentRating{
		Uid:       uid,
		CommentID: commentID,
		Rating:    rating,
	})
}

func (r *commentRepository) Unrate(ctx context.Context, uid, commentID int64) error {
	return r.dao.DeleteRating(ctx, uid, commentID)
}

func (r *commentRepository) toDomains(cs []dao.Comment, err error) ([]domain.Comment, error) {
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	return dao.Comment{
		ID:       comment.ID,
		Uid:      comment.User.ID,
		VideoID:  comment.VideoID,
		ParentID: sql.Null[int64]{V: comment.ParentID, Valid: comment.ParentID != 0},
		Content:  comment.Content,
	}
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID: comment.ID,
		User: domain.User{
			ID: comment.Uid,
		},
		VideoID:    comment.VideoID,
		ParentID:   comment.ParentID.V,
		AncestorID: comment.AncestorID.V,
		Content:    comment.Content,
		Ctime:      comment.Ctime,
	}
}
