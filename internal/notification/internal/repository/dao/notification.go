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
	"github.com/pkg/errors"
)

type NotificationDAO interface {
	// BatchCreate 一条语句插入，回填 ID
	BatchCreate(ctx context.Context, ns []Notification) ([]Notification, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// DeleteBefore 按 ID 顺序删除 ctime 早于指定时间的通知，最多 limit 条
	DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (d *GORMNotificationDAO) BatchCreate(ctx context.Context, ns []Notification) ([]Notification, error) {
	if len(ns) == 0 {
		return ns, nil
	}
	now := time.Now().UnixMilli()
	for i := range ns {
		ns[i].Ctime = now
	}
	err := d.db.WithContext(ctx).Create(&ns).Error
	if err != nil {
		return nil, errors.Wrapf(err, "批量插入 %d 条通知失败", len(ns))
	}
	return ns, nil
}

func (d *GORMNotificationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, errors.Wrap(err, "查询通知失败")
}

func (d *GORMNotificationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).
		Count(&cnt).Error
	return cnt, errors.Wrap(err, "统计通知失败")
}

func (d *GORMNotificationDAO) DeleteBefore(ctx context.Context, ctime int64, limit int) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("ctime < ?", ctime).
		Order("id ASC").
		Limit(limit).
		Delete(&Notification{})
	return res.RowsAffected, errors.Wrap(res.Error, "清理过期通知失败")
}

type Notification struct {
	ID      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"not null;index:idx_uid_id,priority:1;comment:'接收者'"`
	Type    string `gorm:"type:varchar(32);not null"`
	Message string `gorm:"type:varchar(1024);not null"`
	Link    string `gorm:"type:varchar(512)"`
	VideoID int64  `gorm:"not null;default:0"`
	Ctime   int64  `gorm:"index"`
}

func (Notification) TableName() string {
	return "notifications"
}
