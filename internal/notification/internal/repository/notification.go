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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/netflex/internal/notification/internal/domain"
	"github.com/ecodeclub/netflex/internal/notification/internal/repository/dao"
)

//go:generate mockgen -source=./notification.go -package=repomocks -destination=./mocks/notification.mock.go NotificationRepository
type NotificationRepository interface {
	BatchCreate(ctx context.Context, ns []domain.Notification) ([]domain.Notification, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) BatchCreate(ctx context.Context, ns []domain.Notification) ([]domain.Notification, error) {
	entities, err := r.dao.BatchCreate(ctx, slice.Map(ns, func(_ int, src domain.Notification) dao.Notification {
		return r.toEntity(src)
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *notificationRepository) DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error) {
	return r.dao.DeleteBefore(ctx, ctime, limit)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		ID:      n.ID,
		Uid:     n.Uid,
		Type:    string(n.Type),
		Message: n.Message,
		Link:    n.Link,
		VideoID: n.VideoID,
		Ctime:   n.Ctime,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:      n.ID,
		Uid:     n.Uid,
		Type:    domain.Type(n.Type),
		Message: n.Message,
		Link:    n.Link,
		VideoID: n.VideoID,
		Ctime:   n.Ctime,
	}
}
