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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/comment"
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	"github.com/ecodeclub/netflex/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

func InitAdminServer(commentHdl *comment.AdminHandler) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware(), middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	commentHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 要求 session 里的 role 为 admin
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := authz.Current(&ginx.Context{Context: ctx})
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !id.IsAdmin() {
			elog.Warn("非法访问 admin 接口", elog.Int64("uid", id.Uid))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
