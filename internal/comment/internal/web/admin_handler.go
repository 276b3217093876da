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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/netflex/internal/comment/internal/service"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 注册在 admin server 上，只有管理员能访问
type AdminHandler struct {
	svc    service.CommentService
	logger *elog.Component
}

func NewAdminHandler(svc service.CommentService) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comments")
	group.GET("", ginx.W(h.List))
	group.POST("/:commentId/delete", ginx.W(h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListAll(ctx, 0)
	if err != nil {
		return fail(ctx, h.logger, err, http.StatusInternalServerError)
	}
	return ginx.Result{
		Data: newComments(cs),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "commentId", "comment ID")
	if err == nil {
		err = h.svc.Moderate(ctx, id)
	}
	if err != nil {
		return fail(ctx, h.logger, err, http.StatusBadRequest)
	}
	return ginx.Result{
		Msg: "Comment deleted successfully!",
	}, nil
}
