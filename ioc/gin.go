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
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/comment"
	"github.com/ecodeclub/netflex/internal/notification"
	"github.com/ecodeclub/netflex/internal/pkg/middleware"
	"github.com/ecodeclub/netflex/internal/rating"
	"github.com/ecodeclub/netflex/internal/user"
	"github.com/ecodeclub/netflex/internal/video"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	videoHdl *video.Handler,
	commentHdl *comment.Handler,
	ratingHdl *rating.Handler,
	notificationHdl *notification.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware(), middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	videoHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	ratingHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	videoHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	ratingHdl.PrivateRoutes(res.Engine)
	notificationHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.HasSuffix(origin, "netflex.id.vn")
		},
	})
}
