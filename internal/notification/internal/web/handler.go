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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/notification/internal/domain"
	"github.com/ecodeclub/netflex/internal/notification/internal/errs"
	"github.com/ecodeclub/netflex/internal/notification/internal/service"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxLimit = 100

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/notifications/list", ginx.BS[ListReq](h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	ns, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		h.logger.Error("查询通知失败", elog.FieldErr(err))
		return webx.Fail(ctx, http.StatusInternalServerError, errs.SystemError.Code, err)
	}
	return ginx.Result{
		Data: NotificationList{
			List: slice.Map(ns, func(_ int, src domain.Notification) Notification {
				return newNotification(src)
			}),
			Total: total,
		},
	}, nil
}
