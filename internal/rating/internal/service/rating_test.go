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

	"github.com/ecodeclub/netflex/internal/pkg/authz"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/rating/internal/domain"
	repomocks "github.com/ecodeclub/netflex/internal/rating/internal/repository/mocks"
	"github.com/ecodeclub/netflex/internal/video"
	videomocks "github.com/ecodeclub/netflex/internal/video/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingService_AddRating(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (*repomocks.MockRatingRepository, *videomocks.MockVideoService)
		rating domain.Rating

		wantRating domain.Rating
		wantKind   errs.Kind
		wantErr    bool
	}{
		{
			name: "覆盖之前的评分",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRatingRepository, *videomocks.MockVideoService) {
				repo := repomocks.NewMockRatingRepository(ctrl)
				videoSvc := videomocks.NewMockVideoService(ctrl)
				videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(video.Video{ID: 10}, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Rating{Uid: 5, VideoID: 10, Rating: 2}).
					Return(domain.Rating{ID: 1, Uid: 5, VideoID: 10, Rating: 2}, nil)
				return repo, videoSvc
			},
			rating:     domain.Rating{VideoID: 10, Rating: 2},
			wantRating: domain.Rating{ID: 1, Uid: 5, VideoID: 10, Rating: 2},
		},
		{
			name: "分数超出范围",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRatingRepository, *videomocks.MockVideoService) {
				return repomocks.NewMockRatingRepository(ctrl), videomocks.NewMockVideoService(ctrl)
			},
			rating:   domain.Rating{VideoID: 10, Rating: 6},
			wantKind: errs.Validation,
			wantErr:  true,
		},
		{
			name: "视频不存在",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRatingRepository, *videomocks.MockVideoService) {
				videoSvc := videomocks.NewMockVideoService(ctrl)
				videoSvc.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(video.Video{}, errs.Newf(errs.NotFound, "Video not found with ID: %d", 11))
				return repomocks.NewMockRatingRepository(ctrl), videoSvc
			},
			rating:   domain.Rating{VideoID: 11, Rating: 3},
			wantKind: errs.NotFound,
			wantErr:  true,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRatingRepository, *videomocks.MockVideoService) {
				repo := repomocks.NewMockRatingRepository(ctrl)
				videoSvc := videomocks.NewMockVideoService(ctrl)
				videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(video.Video{ID: 10}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.Rating{}, errors.New("db error"))
				return repo, videoSvc
			},
			rating:   domain.Rating{VideoID: 10, Rating: 1},
			wantKind: errs.Unknown,
			wantErr:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewRatingService(tc.mock(ctrl))
			r, err := svc.AddRating(context.Background(), authz.Identity{Uid: 5}, tc.rating)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRating, r)
		})
	}
}

func TestRatingService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockRatingRepository(ctrl)
	videoSvc := videomocks.NewMockVideoService(ctrl)
	videoSvc.EXPECT().FindByID(gomock.Any(), int64(10)).Return(video.Video{ID: 10}, nil)
	repo.EXPECT().Summary(gomock.Any(), int64(10), int64(5)).Return(domain.Summary{
		VideoID: 10, Average: 3.5, Count: 2, MyRating: 4,
	}, nil)

	s, err := NewRatingService(repo, videoSvc).Summary(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{VideoID: 10, Average: 3.5, Count: 2, MyRating: 4}, s)
}

func TestRatingService_DeleteRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockRatingRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), int64(5), int64(10)).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), int64(5), int64(10)).Return(errors.New("db error"))

	svc := NewRatingService(repo, videomocks.NewMockVideoService(ctrl))
	assert.NoError(t, svc.DeleteRating(context.Background(), 5, 10))
	assert.Error(t, svc.DeleteRating(context.Background(), 5, 10))
}
