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

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/test"
	"github.com/ecodeclub/netflex/internal/video/internal/domain"
	"github.com/ecodeclub/netflex/internal/video/internal/service"
	videomocks "github.com/ecodeclub/netflex/internal/video/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.VideoService
		body     string
		wantCode int
		wantRes  test.Result[Video]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) service.VideoService {
				svc := videomocks.NewMockVideoService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Video{
					Title:      "Go 并发",
					Category:   "tech",
					UploaderID: 2,
				}).Return(domain.Video{ID: 10, Title: "Go 并发", Category: "tech", UploaderID: 2, Ctime: 123}, nil)
				return svc
			},
			body:     `{"title":"Go 并发","category":"tech"}`,
			wantCode: http.StatusCreated,
			wantRes: test.Result[Video]{
				Data: Video{ID: 10, Title: "Go 并发", Category: "tech", UploaderID: 2, UploadDate: 123},
			},
		},
		{
			name: "标题为空",
			mock: func(ctrl *gomock.Controller) service.VideoService {
				svc := videomocks.NewMockVideoService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Video{}, errs.New(errs.Validation, "Video title must not be empty"))
				return svc
			},
			body:     `{"title":""}`,
			wantCode: http.StatusBadRequest,
			wantRes: test.Result[Video]{
				Code: 502002,
				Msg:  "Error: Video title must not be empty",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: 2}))
			})
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/api/videos", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var res test.Result[Video]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.VideoService
		path     string
		wantCode int
		wantRes  test.Result[Video]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.VideoService {
				svc := videomocks.NewMockVideoService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(10)).
					Return(domain.Video{ID: 10, Title: "Go 并发", UploaderID: 2}, nil)
				return svc
			},
			path:     "/api/videos/10",
			wantCode: http.StatusOK,
			wantRes: test.Result[Video]{
				Data: Video{ID: 10, Title: "Go 并发", UploaderID: 2},
			},
		},
		{
			name: "视频不存在",
			mock: func(ctrl *gomock.Controller) service.VideoService {
				svc := videomocks.NewMockVideoService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Video{}, errs.Newf(errs.NotFound, "Video not found with ID: %d", 11))
				return svc
			},
			path:     "/api/videos/11",
			wantCode: http.StatusNotFound,
			wantRes: test.Result[Video]{
				Code: 502003,
				Msg:  "Error: Video not found with ID: 11",
			},
		},
		{
			name: "ID 格式不对",
			mock: func(ctrl *gomock.Controller) service.VideoService {
				return videomocks.NewMockVideoService(ctrl)
			},
			path:     "/api/videos/abc",
			wantCode: http.StatusBadRequest,
			wantRes: test.Result[Video]{
				Code: 502002,
				Msg:  "Error: Invalid video ID",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var res test.Result[Video]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
