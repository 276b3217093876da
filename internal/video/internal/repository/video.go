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

	"github.com/ecodeclub/netflex/internal/video/internal/domain"
	"github.com/ecodeclub/netflex/internal/video/internal/repository/dao"
)

var ErrVideoNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./video.go -package=repomocks -destination=./mocks/video.mock.go VideoRepository
type VideoRepository interface {
	Create(ctx context.Context, v domain.Video) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Video, error)
}

type videoRepository struct {
	dao dao.VideoDAO
}

func NewVideoRepository(d dao.VideoDAO) VideoRepository {
	return &videoRepository{dao: d}
}

func (r *videoRepository) Create(ctx context.Context, v domain.Video) (int64, error) {
	return r.dao.Create(ctx, dao.Video{
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		UploaderID:  v.UploaderID,
	})
}

func (r *videoRepository) FindByID(ctx context.Context, id int64) (domain.Video, error) {
	v, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Video{}, err
	}
	return r.toDomain(v), nil
}

func (r *videoRepository) toDomain(v dao.Video) domain.Video {
	return domain.Video{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		UploaderID:  v.UploaderID,
		ViewCount:   v.ViewCount,
		Ctime:       v.Ctime,
	}
}
