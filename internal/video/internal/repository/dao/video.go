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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type VideoDAO interface {
	Create(ctx context.Context, v Video) (int64, error)
	FindByID(ctx context.Context, id int64) (Video, error)
}

type GORMVideoDAO struct {
	db *egorm.Component
}

func NewGORMVideoDAO(db *egorm.Component) VideoDAO {
	return &GORMVideoDAO{db: db}
}

func (d *GORMVideoDAO) Create(ctx context.Context, v Video) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	err := d.db.WithContext(ctx).Create(&v).Error
	return v.ID, err
}

func (d *GORMVideoDAO) FindByID(ctx context.Context, id int64) (Video, error) {
	var v Video
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	return v, err
}

type Video struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(512);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(128);index"`
	UploaderID  int64  `gorm:"not null;index;comment:'上传者'"`
	ViewCount   int64  `gorm:"not null;default:0"`
	Ctime       int64
	Utime       int64
}

func (Video) TableName() string {
	return "videos"
}
