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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	perrs "github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/ecodeclub/netflex/internal/rating/internal/domain"
	"github.com/ecodeclub/netflex/internal/rating/internal/errs"
	"github.com/ecodeclub/netflex/internal/rating/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.RatingService
	logger *elog.Component
}

func NewHandler(svc service.RatingService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/ratings/video/:videoId", ginx.W(h.Summary))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/ratings")
	g.POST("", ginx.BS[RateReq](h.Rate))
	g.DELETE("/:userId/:videoId", ginx.S(h.Delete))
}

func (h *Handler) Rate(ctx *ginx.Context, req RateReq, sess session.Session) (ginx.Result, error) {
	actor := authz.FromSession(sess)
	if _, err := authz.RequireOwner(actor, req.UserID, "You can only rate videos with your own user ID"); err != nil {
		return webx.Fail(ctx, http.StatusForbidden, errs.ForbiddenError.Code, err)
	}
	r, err := h.svc.AddRating(ctx, actor, domain.Rating{
		VideoID: req.VideoID,
		Rating:  req.Rating,
	})
	if err != nil {
		code := errs.SystemError.Code
		switch perrs.KindOf(err) {
		case perrs.Validation:
			code = errs.ValidationError.Code
		case perrs.NotFound:
			code = errs.NotFoundError.Code
		default:
			h.logger.Error("评分失败", elog.FieldErr(err), elog.Int64("uid", actor.Uid))
		}
		return webx.Write(ctx, http.StatusBadRequest, ginx.Result{
			Code: code,
			Msg:  "Error processing rating: " + perrs.Message(err),
		})
	}
	return ginx.Result{
		Data: newRating(r),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid, err := webx.ParamInt64(ctx, "userId", "user ID")
	if err != nil {
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
	}
	vid, err := webx.ParamInt64(ctx, "videoId", "video ID")
	if err != nil {
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
	}
	if uid != sess.Claims().Uid {
		return webx.Fail(ctx, http.StatusForbidden, errs.ForbiddenError.Code,
			perrs.New(perrs.Forbidden, "You can only delete your own ratings"))
	}
	if err = h.svc.DeleteRating(ctx, uid, vid); err != nil {
		h.logger.Error("删除评分失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return webx.Fail(ctx, http.StatusBadRequest, errs.SystemError.Code, err)
	}
	return ginx.Result{
		Msg: "Rating deleted successfully!",
	}, nil
}

func (h *Handler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	vid, err := webx.ParamInt64(ctx, "videoId", "video ID")
	if err != nil {
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
	}
	s, err := h.svc.Summary(ctx, vid, authz.Viewer(ctx))
	if err != nil {
		if perrs.KindOf(err) == perrs.NotFound {
			return webx.Fail(ctx, http.StatusNotFound, errs.NotFoundError.Code, err)
		}
		h.logger.Error("查询评分失败", elog.FieldErr(err), elog.Int64("vid", vid))
		return webx.Fail(ctx, http.StatusBadRequest, errs.SystemError.Code, err)
	}
	return ginx.Result{
		Data: newSummary(s),
	}, nil
}
