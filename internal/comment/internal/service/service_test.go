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
	"testing"

	"github.com/ecodeclub/netflex/internal/comment/internal/domain"
	"github.com/ecodeclub/netflex/internal/comment/internal/repository"
	repomocks "github.com/ecodeclub/netflex/internal/comment/internal/repository/mocks"
	"github.com/ecodeclub/netflex/internal/notification"
	notificationmocks "github.com/ecodeclub/netflex/internal/notification/mocks"
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/user"
	usermocks "github.com/ecodeclub/netflex/internal/user/mocks"
	"github.com/ecodeclub/netflex/internal/video"
	videomocks "github.com/ecodeclub/netflex/internal/video/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo      *repomocks.MockCommentRepository
	userSvc   *usermocks.MockUserService
	videoSvc  *videomocks.MockVideoService
	notifySvc *notificationmocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:      repomocks.NewMockCommentRepository(ctrl),
		userSvc:   usermocks.NewMockUserService(ctrl),
		videoSvc:  videomocks.NewMockVideoService(ctrl),
		notifySvc: notificationmocks.NewMockService(ctrl),
	}
}

func (m mocks) svc() CommentService {
	return NewCommentService(m.repo, m.userSvc, m.videoSvc, m.notifySvc)
}

var (
	alice = user.User{Id: 1, Username: "alice", Avatar: "https://netflex.id.vn/a.png"}
	bob   = user.User{Id: 2, Username: "bob"}
	carol = user.User{Id: 3, Username: "carol"}
	// 上传者是 bob
	goVideo = video.Video{ID: 10, Title: "Go", UploaderID: 2}
)

func TestCommentService_AddComment(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		actor    authz.Identity
		req      domain.CreateComment
		want     domain.Comment
		wantKind errs.Kind
		wantMsg  string
		wantErr  bool
	}{
		{
			name: "顶层评论通知上传者",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(alice, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Comment{
					User:    domain.User{ID: 1},
					VideoID: 10,
					Content: "Great video!",
				}).Return(domain.Comment{
					ID:      100,
					User:    domain.User{ID: 1},
					VideoID: 10,
					Content: "Great video!",
					Ctime:   123,
				}, nil)
				m.notifySvc.EXPECT().Notify(gomock.Any(), notification.Notification{
					Uid:     2,
					Type:    notification.TypeNewComment,
					Message: "alice commented on your video: Go",
					Link:    "/watch/10",
					VideoID: 10,
				}).Return(nil)
			},
			actor: authz.Identity{Uid: 1, Role: authz.RoleUser},
			req:   domain.CreateComment{Content: " Great video! ", VideoID: 10},
			want: domain.Comment{
				ID:      100,
				User:    domain.User{ID: 1, Username: "alice", Avatar: "https://netflex.id.vn/a.png"},
				VideoID: 10,
				Content: "Great video!",
				Ctime:   123,
				Replies: []domain.Comment{},
			},
		},
		{
			name: "回复通知上传者和父评论作者",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(carol, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Comment{
					ID:      100,
					User:    domain.User{ID: 1},
					VideoID: 10,
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Comment{
					User:     domain.User{ID: 3},
					VideoID:  10,
					ParentID: 100,
					Content:  "Totally!",
				}).Return(domain.Comment{
					ID:         101,
					User:       domain.User{ID: 3},
					VideoID:    10,
					ParentID:   100,
					AncestorID: 100,
					Content:    "Totally!",
				}, nil)
				m.notifySvc.EXPECT().Notify(gomock.Any(),
					notification.Notification{
						Uid:     2,
						Type:    notification.TypeNewReply,
						Message: "carol replied to a comment on your video: Go",
						Link:    "/watch/10",
						VideoID: 10,
					},
					notification.Notification{
						Uid:     1,
						Type:    notification.TypeCommentReply,
						Message: "carol replied to your comment on: Go",
						Link:    "/watch/10",
						VideoID: 10,
					}).Return(nil)
			},
			actor: authz.Identity{Uid: 3, Role: authz.RoleUser},
			req:   domain.CreateComment{Content: "Totally!", VideoID: 10, ParentID: 100},
			want: domain.Comment{
				ID:         101,
				User:       domain.User{ID: 3, Username: "carol"},
				VideoID:    10,
				ParentID:   100,
				AncestorID: 100,
				Content:    "Totally!",
				Replies:    []domain.Comment{},
			},
		},
		{
			name: "上传者评论自己的视频不通知",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(2)).Return(bob, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Comment{
					ID:      102,
					User:    domain.User{ID: 2},
					VideoID: 10,
					Content: "Thanks for watching",
				}, nil)
			},
			actor: authz.Identity{Uid: 2, Role: authz.RoleUser},
			req:   domain.CreateComment{Content: "Thanks for watching", VideoID: 10},
			want: domain.Comment{
				ID:      102,
				User:    domain.User{ID: 2, Username: "bob"},
				VideoID: 10,
				Content: "Thanks for watching",
				Replies: []domain.Comment{},
			},
		},
		{
			name: "上传者回复自己的评论不通知",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(2)).Return(bob, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(102)).Return(domain.Comment{
					ID:      102,
					User:    domain.User{ID: 2},
					VideoID: 10,
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Comment{
					ID:       103,
					User:     domain.User{ID: 2},
					VideoID:  10,
					ParentID: 102,
					Content:  "PS",
				}, nil)
			},
			actor: authz.Identity{Uid: 2, Role: authz.RoleUser},
			req:   domain.CreateComment{Content: "PS", VideoID: 10, ParentID: 102},
			want: domain.Comment{
				ID:       103,
				User:     domain.User{ID: 2, Username: "bob"},
				VideoID:  10,
				ParentID: 102,
				Content:  "PS",
				Replies:  []domain.Comment{},
			},
		},
		{
			name:     "内容为空",
			mock:     func(m mocks) {},
			actor:    authz.Identity{Uid: 1},
			req:      domain.CreateComment{Content: "  ", VideoID: 10},
			wantErr:  true,
			wantKind: errs.Validation,
			wantMsg:  "Comment content must not be empty",
		},
		{
			name: "视频不存在",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(alice, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(404)).
					Return(video.Video{}, errs.Newf(errs.NotFound, "Video not found with ID: %d", 404))
			},
			actor:    authz.Identity{Uid: 1},
			req:      domain.CreateComment{Content: "hi", VideoID: 404},
			wantErr:  true,
			wantKind: errs.NotFound,
			wantMsg:  "Video not found with ID: 404",
		},
		{
			name: "父评论不存在",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(alice, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			actor:    authz.Identity{Uid: 1},
			req:      domain.CreateComment{Content: "hi", VideoID: 10, ParentID: 999},
			wantErr:  true,
			wantKind: errs.NotFound,
			wantMsg:  "Parent comment not found with ID: 999",
		},
		{
			name: "父评论属于其它视频",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(alice, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(200)).Return(domain.Comment{
					ID:      200,
					User:    domain.User{ID: 3},
					VideoID: 11,
				}, nil)
			},
			actor:    authz.Identity{Uid: 1},
			req:      domain.CreateComment{Content: "hi", VideoID: 10, ParentID: 200},
			wantErr:  true,
			wantKind: errs.Validation,
			wantMsg:  "Parent comment 200 does not belong to video 10",
		},
		{
			name: "通知失败撤销评论",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(alice, nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Comment{ID: 100}, nil)
				m.notifySvc.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				m.repo.EXPECT().Delete(gomock.Any(), []int64{100}).Return(int64(1), nil)
			},
			actor:    authz.Identity{Uid: 1},
			req:      domain.CreateComment{Content: "hi", VideoID: 10},
			wantErr:  true,
			wantKind: errs.Unknown,
			wantMsg:  "发送评论通知失败: db error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			c, err := m.svc().AddComment(context.Background(), tc.actor, tc.req)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				assert.Equal(t, tc.wantMsg, errs.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
			assert.False(t, c.LikedByUser)
			assert.False(t, c.DislikedByUser)
		})
	}
}

// 100 ─┬─ 101 ─── 102
//      └─ 103
func thread100() []domain.Comment {
	return []domain.Comment{
		{ID: 100, User: domain.User{ID: 1}, VideoID: 10},
		{ID: 101, User: domain.User{ID: 3}, VideoID: 10, ParentID: 100, AncestorID: 100},
		{ID: 102, User: domain.User{ID: 1}, VideoID: 10, ParentID: 101, AncestorID: 100},
		{ID: 103, User: domain.User{ID: 2}, VideoID: 10, ParentID: 100, AncestorID: 100},
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		id       int64
		actor    authz.Identity
		wantErr  bool
		wantKind errs.Kind
	}{
		{
			name: "作者删除顶层评论连同所有回复",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(thread100()[0], nil)
				m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
				m.repo.EXPECT().Delete(gomock.Any(), []int64{100, 101, 102, 103}).Return(int64(4), nil)
			},
			id:    100,
			actor: authz.Identity{Uid: 1},
		},
		{
			name: "上传者删除别人的回复",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(101)).Return(thread100()[1], nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
				m.repo.EXPECT().Delete(gomock.Any(), []int64{101, 102}).Return(int64(2), nil)
			},
			id:    101,
			actor: authz.Identity{Uid: 2},
		},
		{
			name: "其他人无权删除",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(101)).Return(thread100()[1], nil)
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
			},
			id:       101,
			actor:    authz.Identity{Uid: 5},
			wantErr:  true,
			wantKind: errs.Forbidden,
		},
		{
			name: "评论不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			id:       404,
			actor:    authz.Identity{Uid: 1},
			wantErr:  true,
			wantKind: errs.NotFound,
		},
		{
			name: "并发删除时后到的一方",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(103)).Return(thread100()[3], nil)
				m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
				m.repo.EXPECT().Delete(gomock.Any(), []int64{103}).Return(int64(0), nil)
			},
			id:       103,
			actor:    authz.Identity{Uid: 2},
			wantErr:  true,
			wantKind: errs.NotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := m.svc().DeleteComment(context.Background(), tc.id, tc.actor)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommentService_Moderate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(101)).Return(thread100()[1], nil)
	m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
	m.repo.EXPECT().Delete(gomock.Any(), []int64{101, 102}).Return(int64(2), nil)
	assert.NoError(t, m.svc().Moderate(context.Background(), 101))
}

func TestCommentService_ListForVideo(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		viewer   int64
		want     []domain.Comment
		wantErr  bool
		wantKind errs.Kind
	}{
		{
			name: "顶层评论带回复",
			mock: func(m mocks) {
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByVideo(gomock.Any(), int64(10)).Return([]domain.Comment{
					{ID: 100, User: domain.User{ID: 1}, VideoID: 10, Content: "Great video!"},
					{ID: 101, User: domain.User{ID: 3}, VideoID: 10, ParentID: 100, AncestorID: 100, Content: "Totally!"},
					{ID: 104, User: domain.User{ID: 3}, VideoID: 10, Content: "Second"},
				}, nil)
				m.repo.EXPECT().Aggregate(gomock.Any(), gomock.Any(), int64(1)).
					DoAndReturn(func(_ context.Context, cs []domain.Comment, _ int64) error {
						cs[1].Likes = 2
						cs[1].LikedByUser = true
						return nil
					})
				m.userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{1, 3}).Return([]user.User{alice, carol}, nil)
			},
			viewer: 1,
			want: []domain.Comment{
				{
					ID:      100,
					User:    domain.User{ID: 1, Username: "alice", Avatar: "https://netflex.id.vn/a.png"},
					VideoID: 10,
					Content: "Great video!",
					Replies: []domain.Comment{
						{
							ID:          101,
							User:        domain.User{ID: 3, Username: "carol"},
							VideoID:     10,
							ParentID:    100,
							AncestorID:  100,
							Content:     "Totally!",
							Likes:       2,
							LikedByUser: true,
							Replies:     []domain.Comment{},
						},
					},
				},
				{
					ID:      104,
					User:    domain.User{ID: 3, Username: "carol"},
					VideoID: 10,
					Content: "Second",
					Replies: []domain.Comment{},
				},
			},
		},
		{
			name: "没有评论",
			mock: func(m mocks) {
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByVideo(gomock.Any(), int64(10)).Return(nil, nil)
			},
			want: []domain.Comment{},
		},
		{
			name: "视频不存在",
			mock: func(m mocks) {
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).
					Return(video.Video{}, errs.Newf(errs.NotFound, "Video not found with ID: %d", 10))
			},
			wantErr:  true,
			wantKind: errs.NotFound,
		},
		{
			name: "填充用户信息失败",
			mock: func(m mocks) {
				m.videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(goVideo, nil)
				m.repo.EXPECT().FindByVideo(gomock.Any(), int64(10)).Return([]domain.Comment{
					{ID: 100, User: domain.User{ID: 1}, VideoID: 10},
				}, nil)
				m.repo.EXPECT().Aggregate(gomock.Any(), gomock.Any(), int64(0)).Return(nil)
				m.userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{1}).Return(nil, errors.New("db error"))
			},
			wantErr:  true,
			wantKind: errs.Unknown,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			cs, err := m.svc().ListForVideo(context.Background(), 10, tc.viewer)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cs)
		})
	}
}

func TestCommentService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(carol, nil)
	m.repo.EXPECT().FindByUser(gomock.Any(), int64(3)).Return([]domain.Comment{thread100()[1]}, nil)
	m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
	m.repo.EXPECT().Aggregate(gomock.Any(), gomock.Any(), int64(0)).Return(nil)
	m.userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{1, 3, 2}).Return([]user.User{alice, bob, carol}, nil)

	cs, err := m.svc().ListForUser(context.Background(), 3, 0)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, int64(101), cs[0].ID)
	assert.Equal(t, "carol", cs[0].User.Username)
	require.Len(t, cs[0].Replies, 1)
	assert.Equal(t, int64(102), cs[0].Replies[0].ID)
	assert.Equal(t, "alice", cs[0].Replies[0].User.Username)
}

func TestCommentService_ListForUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.userSvc.EXPECT().Profile(gomock.Any(), int64(9)).
		Return(user.User{}, errs.Newf(errs.NotFound, "User not found with ID: %d", 9))
	_, err := m.svc().ListForUser(context.Background(), 9, 0)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestCommentService_RateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(103)).Return(thread100()[3], nil).Times(2)
	m.repo.EXPECT().Rate(gomock.Any(), int64(1), int64(103), false).Return(nil)
	m.repo.EXPECT().FindThreads(gomock.Any(), []int64{100}).Return(thread100(), nil)
	m.repo.EXPECT().Aggregate(gomock.Any(), gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, cs []domain.Comment, _ int64) error {
			cs[3].Dislikes = 1
			cs[3].DislikedByUser = true
			return nil
		})
	m.userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).Return([]user.User{alice, bob, carol}, nil)

	c, err := m.svc().RateComment(context.Background(), 103, authz.Identity{Uid: 1}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Dislikes)
	assert.True(t, c.DislikedByUser)
	assert.False(t, c.LikedByUser)
}

func TestCommentService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(domain.Comment{}, repository.ErrCommentNotFound)
	_, err := m.svc().GetByID(context.Background(), 404, 0)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
	assert.Equal(t, "Comment not found with ID: 404", errs.Message(err))
}
