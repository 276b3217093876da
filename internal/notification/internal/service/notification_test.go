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

	"github.com/ecodeclub/netflex/internal/notification/internal/domain"
	"github.com/ecodeclub/netflex/internal/notification/internal/event"
	evtmocks "github.com/ecodeclub/netflex/internal/notification/internal/event/mocks"
	"github.com/ecodeclub/netflex/internal/notification/internal/repository"
	repomocks "github.com/ecodeclub/netflex/internal/notification/internal/repository/mocks"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Notify(t *testing.T) {
	uploader := domain.Notification{
		Uid:     2,
		Type:    domain.TypeNewReply,
		Message: "carol replied to a comment on your video: Go",
		Link:    "/watch/10",
		VideoID: 10,
	}
	author := domain.Notification{
		Uid:     1,
		Type:    domain.TypeCommentReply,
		Message: "carol replied to your comment on: Go",
		Link:    "/watch/10",
		VideoID: 10,
	}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer)
		ns       []domain.Notification
		wantErr  bool
		wantKind errs.Kind
	}{
		{
			name: "保存并发送事件",
			mock: func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				producer := evtmocks.NewMockNotificationEventProducer(ctrl)
				saved1, saved2 := uploader, author
				saved1.ID, saved2.ID = 1, 2
				repo.EXPECT().BatchCreate(gomock.Any(), []domain.Notification{uploader, author}).
					Return([]domain.Notification{saved1, saved2}, nil)
				producer.EXPECT().Produce(gomock.Any(), event.NewNotificationEvent(saved1)).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), event.NewNotificationEvent(saved2)).Return(nil)
				return repo, producer
			},
			ns: []domain.Notification{uploader, author},
		},
		{
			name: "事件发送失败不影响结果",
			mock: func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				producer := evtmocks.NewMockNotificationEventProducer(ctrl)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
					Return([]domain.Notification{uploader}, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq error"))
				return repo, producer
			},
			ns: []domain.Notification{uploader},
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer) {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				producer := evtmocks.NewMockNotificationEventProducer(ctrl)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
				return repo, producer
			},
			ns:       []domain.Notification{uploader},
			wantErr:  true,
			wantKind: errs.Unknown,
		},
		{
			name: "非法的类型",
			mock: func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer) {
				return repomocks.NewMockNotificationRepository(ctrl), evtmocks.NewMockNotificationEventProducer(ctrl)
			},
			ns:       []domain.Notification{{Uid: 1, Type: "LIKE"}},
			wantErr:  true,
			wantKind: errs.Validation,
		},
		{
			name: "没有通知",
			mock: func(ctrl *gomock.Controller) (repository.NotificationRepository, event.NotificationEventProducer) {
				return repomocks.NewMockNotificationRepository(ctrl), evtmocks.NewMockNotificationEventProducer(ctrl)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Notify(context.Background(), tc.ns...)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockNotificationRepository(ctrl)
	want := []domain.Notification{
		{ID: 3, Uid: 1, Type: domain.TypeCommentReply},
		{ID: 1, Uid: 1, Type: domain.TypeNewComment},
	}
	repo.EXPECT().FindByUid(gomock.Any(), int64(1), 0, 10).Return(want, nil)
	repo.EXPECT().CountByUid(gomock.Any(), int64(1)).Return(int64(2), nil)

	svc := NewService(repo, evtmocks.NewMockNotificationEventProducer(ctrl))
	ns, total, err := svc.List(context.Background(), 1, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, want, ns)
	assert.Equal(t, int64(2), total)
}
