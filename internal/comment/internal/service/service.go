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
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/netflex/internal/comment/internal/domain"
	"github.com/ecodeclub/netflex/internal/comment/internal/repository"
	"github.com/ecodeclub/netflex/internal/notification"
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/user"
	"github.com/ecodeclub/netflex/internal/video"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go CommentService
type CommentService interface {
	// AddComment 创建顶层评论或回复，并通知视频上传者和被回复的人
	AddComment(ctx context.Context, actor authz.Identity, req domain.CreateComment) (domain.Comment, error)
	// DeleteComment 评论者本人或视频上传者可以删除，连同所有回复一起删除
	DeleteComment(ctx context.Context, id int64, actor authz.Identity) error
	// Moderate 管理员删除，不校验归属
	Moderate(ctx context.Context, id int64) error
	RateComment(ctx context.Context, id int64, actor authz.Identity, like bool) (domain.Comment, error)
	UnrateComment(ctx context.Context, id int64, actor authz.Identity) (domain.Comment, error)

	// 以下查询中 viewer 为 0 表示未登录

	// ListForVideo 视频下的顶层评论，每条都带上完整的回复树
	ListForVideo(ctx context.Context, videoID, viewer int64) ([]domain.Comment, error)
	// ListForUser 用户发表的所有评论（包括回复），每条都带上自己的回复树
	ListForUser(ctx context.Context, uid, viewer int64) ([]domain.Comment, error)
	// ListAll 所有视频的顶层评论，不分页
	ListAll(ctx context.Context, viewer int64) ([]domain.Comment, error)
	GetByID(ctx context.Context, id, viewer int64) (domain.Comment, error)
}

type commentService struct {
	repo      repository.CommentRepository
	userSvc   user.UserService
	videoSvc  video.VideoService
	notifySvc notification.Service
	logger    *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	userSvc user.UserService,
	videoSvc video.VideoService,
	notifySvc notification.Service) CommentService {
	return &commentService{
		repo:      repo,
		userSvc:   userSvc,
		videoSvc:  videoSvc,
		notifySvc: notifySvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *commentService) AddComment(ctx context.Context, actor authz.Identity, req domain.CreateComment) (domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.Comment{}, errs.New(errs.Validation, "Comment content must not be empty")
	}
	u, err := s.userSvc.Profile(ctx, actor.Uid)
	if err != nil {
		return domain.Comment{}, err
	}
	v, err := s.videoSvc.FindByID(ctx, req.VideoID)
	if err != nil {
		return domain.Comment{}, err
	}
	var parent *domain.Comment
	if req.ParentID != 0 {
		p, err := s.findComment(ctx, req.ParentID, "Parent comment not found with ID: %d")
		if err != nil {
			return domain.Comment{}, err
		}
		if p.VideoID != v.ID {
			return domain.Comment{}, errs.Newf(errs.Validation,
				"Parent comment %d does not belong to video %d", p.ID, v.ID)
		}
		parent = &p
	}

	created, err := s.repo.Create(ctx, domain.Comment{
		User:     domain.User{ID: u.Id},
		VideoID:  v.ID,
		ParentID: req.ParentID,
		Content:  content,
	})
	if errors.Is(err, repository.ErrInvalidParentID) {
		// 父评论在校验之后被删除了
		return domain.Comment{}, errs.Wrap(errs.NotFound, err,
			fmt.Sprintf("Parent comment not found with ID: %d", req.ParentID))
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("保存评论失败: %w", err)
	}

	ns := s.notifications(u, v, parent)
	if len(ns) > 0 {
		if err = s.notifySvc.Notify(ctx, ns...); err != nil {
			// 通知失败则撤销评论
			if _, er := s.repo.Delete(ctx, []int64{created.ID}); er != nil {
				s.logger.Error("撤销评论失败",
					elog.FieldErr(er),
					elog.Int64("cid", created.ID))
			}
			return domain.Comment{}, fmt.Errorf("发送评论通知失败: %w", err)
		}
	}

	created.User = domain.User{ID: u.Id, Username: u.Username, Avatar: u.Avatar}
	created.Replies = []domain.Comment{}
	return created, nil
}

func (s *commentService) notifications(u user.User, v video.Video, parent *domain.Comment) []notification.Notification {
	link := fmt.Sprintf("/watch/%d", v.ID)
	var ns []notification.Notification
	if u.Id != v.UploaderID {
		n := notification.Notification{
			Uid:     v.UploaderID,
			Type:    notification.TypeNewComment,
			Message: fmt.Sprintf("%s commented on your video: %s", u.Username, v.Title),
			Link:    link,
			VideoID: v.ID,
		}
		if parent != nil {
			n.Type = notification.TypeNewReply
			n.Message = fmt.Sprintf("%s replied to a comment on your video: %s", u.Username, v.Title)
		}
		ns = append(ns, n)
	}
	if parent != nil && parent.User.ID != u.Id {
		ns = append(ns, notification.Notification{
			Uid:     parent.User.ID,
			Type:    notification.TypeCommentReply,
			Message: fmt.Sprintf("%s replied to your comment on: %s", u.Username, v.Title),
			Link:    link,
			VideoID: v.ID,
		})
	}
	return ns
}

func (s *commentService) DeleteComment(ctx context.Context, id int64, actor authz.Identity) error {
	c, err := s.findComment(ctx, id, "Comment not found with ID: %d")
	if err != nil {
		return err
	}
	if c.User.ID != actor.Uid {
		v, err := s.videoSvc.FindByID(ctx, c.VideoID)
		if err != nil && !errs.Is(err, errs.NotFound) {
			return err
		}
		if err != nil || v.UploaderID != actor.Uid {
			return errs.New(errs.Forbidden, "Not authorized to delete this comment")
		}
	}
	return s.removeSubtree(ctx, c)
}

func (s *commentService) Moderate(ctx context.Context, id int64) error {
	c, err := s.findComment(ctx, id, "Comment not found with ID: %d")
	if err != nil {
		return err
	}
	return s.removeSubtree(ctx, c)
}

func (s *commentService) removeSubtree(ctx context.Context, c domain.Comment) error {
	thread, err := s.repo.FindThreads(ctx, []int64{c.ThreadID()})
	if err != nil {
		return fmt.Errorf("查询讨论串失败: %w", err)
	}
	ids := domain.NewTree(thread).Descendants(c.ID)
	if len(ids) == 0 {
		return errs.Newf(errs.NotFound, "Comment not found with ID: %d", c.ID)
	}
	cnt, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return fmt.Errorf("删除评论失败: %w", err)
	}
	// 并发删除时后到的一方
	if cnt == 0 {
		return errs.Newf(errs.NotFound, "Comment not found with ID: %d", c.ID)
	}
	return nil
}

func (s *commentService) RateComment(ctx context.Context, id int64, actor authz.Identity, like bool) (domain.Comment, error) {
	if _, err := s.findComment(ctx, id, "Comment not found with ID: %d"); err != nil {
		return domain.Comment{}, err
	}
	if err := s.repo.Rate(ctx, actor.Uid, id, like); err != nil {
		return domain.Comment{}, fmt.Errorf("评价评论失败: %w", err)
	}
	return s.GetByID(ctx, id, actor.Uid)
}

func (s *commentService) UnrateComment(ctx context.Context, id int64, actor authz.Identity) (domain.Comment, error) {
	if _, err := s.findComment(ctx, id, "Comment not found with ID: %d"); err != nil {
		return domain.Comment{}, err
	}
	if err := s.repo.Unrate(ctx, actor.Uid, id); err != nil {
		return domain.Comment{}, fmt.Errorf("取消评价失败: %w", err)
	}
	return s.GetByID(ctx, id, actor.Uid)
}

func (s *commentService) ListForVideo(ctx context.Context, videoID, viewer int64) ([]domain.Comment, error) {
	if _, err := s.videoSvc.FindByID(ctx, videoID); err != nil {
		return nil, err
	}
	cs, err := s.repo.FindByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("查询视频评论失败: %w", err)
	}
	if err = s.enrich(ctx, cs, viewer); err != nil {
		return nil, err
	}
	return topLevel(domain.NewTree(cs)), nil
}

func (s *commentService) ListForUser(ctx context.Context, uid, viewer int64) ([]domain.Comment, error) {
	if _, err := s.userSvc.Profile(ctx, uid); err != nil {
		return nil, err
	}
	own, err := s.repo.FindByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("查询用户评论失败: %w", err)
	}
	if len(own) == 0 {
		return []domain.Comment{}, nil
	}
	threadIDs := slice.Map(own, func(_ int, src domain.Comment) int64 {
		return src.ThreadID()
	})
	threads, err := s.repo.FindThreads(ctx, dedup(threadIDs))
	if err != nil {
		return nil, fmt.Errorf("查询讨论串失败: %w", err)
	}
	if err = s.enrich(ctx, threads, viewer); err != nil {
		return nil, err
	}
	tree := domain.NewTree(threads)
	res := make([]domain.Comment, 0, len(own))
	for _, c := range own {
		if sub, ok := tree.Subtree(c.ID); ok {
			res = append(res, sub)
		}
	}
	return res, nil
}

func (s *commentService) ListAll(ctx context.Context, viewer int64) ([]domain.Comment, error) {
	cs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if err = s.enrich(ctx, cs, viewer); err != nil {
		return nil, err
	}
	return topLevel(domain.NewTree(cs)), nil
}

func (s *commentService) GetByID(ctx context.Context, id, viewer int64) (domain.Comment, error) {
	c, err := s.findComment(ctx, id, "Comment not found with ID: %d")
	if err != nil {
		return domain.Comment{}, err
	}
	thread, err := s.repo.FindThreads(ctx, []int64{c.ThreadID()})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("查询讨论串失败: %w", err)
	}
	if err = s.enrich(ctx, thread, viewer); err != nil {
		return domain.Comment{}, err
	}
	sub, ok := domain.NewTree(thread).Subtree(id)
	if !ok {
		return domain.Comment{}, errs.Newf(errs.NotFound, "Comment not found with ID: %d", id)
	}
	return sub, nil
}

func (s *commentService) findComment(ctx context.Context, id int64, notFoundFormat string) (domain.Comment, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, errs.Newf(errs.NotFound, notFoundFormat, id)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("查询评论失败: %w", err)
	}
	return c, nil
}

// enrich 并发填充评价统计和评论者信息
func (s *commentService) enrich(ctx context.Context, cs []domain.Comment, viewer int64) error {
	if len(cs) == 0 {
		return nil
	}
	var eg errgroup.Group
	eg.Go(func() error {
		return s.repo.Aggregate(ctx, cs, viewer)
	})
	eg.Go(func() error {
		return s.setUserInfo(ctx, cs)
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("填充评论信息失败: %w", err)
	}
	return nil
}

func (s *commentService) setUserInfo(ctx context.Context, cs []domain.Comment) error {
	uids := dedup(slice.Map(cs, func(_ int, src domain.Comment) int64 {
		return src.User.ID
	}))
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	userMap := slice.ToMap(profiles, func(u user.User) int64 {
		return u.Id
	})
	for i := range cs {
		if u, ok := userMap[cs[i].User.ID]; ok {
			cs[i].User = domain.User{
				ID:       u.Id,
				Username: u.Username,
				Avatar:   u.Avatar,
			}
		}
	}
	return nil
}

func topLevel(tree *domain.Tree) []domain.Comment {
	roots := tree.Roots()
	res := make([]domain.Comment, 0, len(roots))
	for _, r := range roots {
		if r.IsRoot() {
			res = append(res, r)
		}
	}
	return res
}

func dedup(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
