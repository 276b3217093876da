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
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	perrs "github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/ecodeclub/netflex/internal/video/internal/domain"
	"github.com/ecodeclub/netflex/internal/video/internal/errs"
	"github.com/ecodeclub/netflex/internal/video/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.VideoService
	logger *elog.Component
}

func NewHandler(svc service.VideoService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/videos", ginx.BS[CreateReq](h.Create))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/videos/:videoId", ginx.W(h.Detail))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	v, err := h.svc.Create(ctx, domain.Video{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		UploaderID:  sess.Claims().Uid,
	})
	if err != nil {
		if perrs.KindOf(err) == perrs.Validation {
			return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
		}
		h.logger.Error("创建视频失败", elog.FieldErr(err))
		return webx.Fail(ctx, http.StatusBadRequest, errs.SystemError.Code, err)
	}
	return webx.Write(ctx, http.StatusCreated, ginx.Result{
		Data: newVideo(v),
	})
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("videoId"), 10, 64)
	if err != nil {
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code,
			perrs.New(perrs.Validation, "Invalid video ID"))
	}
	v, err := h.svc.FindByID(ctx, id)
	if err != nil {
		if perrs.KindOf(err) == perrs.NotFound {
			return webx.Fail(ctx, http.StatusNotFound, errs.VideoNotFoundError.Code, err)
		}
		h.logger.Error("查询视频失败", elog.FieldErr(err), elog.Int64("vid", id))
		return webx.Fail(ctx, http.StatusInternalServerError, errs.SystemError.Code, err)
	}
	return ginx.Result{
		Data: newVideo(v),
	}, nil
}
