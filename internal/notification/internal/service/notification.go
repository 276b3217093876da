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

	"github.com/ecodeclub/netflex/internal/notification/internal/domain"
	"github.com/ecodeclub/netflex/internal/notification/internal/event"
	"github.com/ecodeclub/netflex/internal/notification/internal/repository"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./notification.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	// Notify 保存通知并发送事件，事件发送失败只记录日志
	Notify(ctx context.Context, ns ...domain.Notification) error
	// List 按时间倒序
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	// PurgeBefore 删除 ctime 早于指定时间的通知，最多 limit 条
	PurgeBefore(ctx context.Context, ctime int64, limit int) (int64, error)
}

type service struct {
	repo     repository.NotificationRepository
	producer event.NotificationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.NotificationRepository, producer event.NotificationEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Notify(ctx context.Context, ns ...domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	for _, n := range ns {
		if !n.Type.Valid() || n.Uid <= 0 {
			return errs.Newf(errs.Validation, "非法的通知: uid=%d, type=%s", n.Uid, n.Type)
		}
	}
	saved, err := s.repo.BatchCreate(ctx, ns)
	if err != nil {
		return fmt.Errorf("保存通知失败: %w", err)
	}
	for _, n := range saved {
		if er := s.producer.Produce(ctx, event.NewNotificationEvent(n)); er != nil {
			s.logger.Error("发送通知事件失败",
				elog.FieldErr(er),
				elog.Int64("uid", n.Uid),
				elog.String("type", string(n.Type)))
		}
	}
	return nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg    errgroup.Group
		ns    []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	return ns, total, eg.Wait()
}

func (s *service) PurgeBefore(ctx context.Context, ctime int64, limit int) (int64, error) {
	return s.repo.DeleteBefore(ctx, ctime, limit)
}
