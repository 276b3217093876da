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

	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/video/internal/domain"
	"github.com/ecodeclub/netflex/internal/video/internal/repository"
)

//go:generate mockgen -source=./video.go -package=videomocks -destination=../../mocks/video.mock.go VideoService
type VideoService interface {
	Create(ctx context.Context, v domain.Video) (domain.Video, error)
	// FindByID 不存在返回 errs.NotFound
	FindByID(ctx context.Context, id int64) (domain.Video, error)
}

type videoService struct {
	repo repository.VideoRepository
}

func NewVideoService(repo repository.VideoRepository) VideoService {
	return &videoService{repo: repo}
}

func (s *videoService) Create(ctx context.Context, v domain.Video) (domain.Video, error) {
	v.Title = strings.TrimSpace(v.Title)
	if v.Title == "" {
		return domain.Video{}, errs.New(errs.Validation, "Video title must not be empty")
	}
	if v.UploaderID <= 0 {
		return domain.Video{}, errs.New(errs.Validation, "Uploader is required")
	}
	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Video{}, fmt.Errorf("保存视频失败: %w", err)
	}
	return s.FindByID(ctx, id)
}

func (s *videoService) FindByID(ctx context.Context, id int64) (domain.Video, error) {
	v, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrVideoNotFound) {
		return domain.Video{}, errs.Newf(errs.NotFound, "Video not found with ID: %d", id)
	}
	if err != nil {
		return domain.Video{}, fmt.Errorf("查询视频失败: %w", err)
	}
	return v, nil
}
