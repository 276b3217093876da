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
	"github.com/ecodeclub/netflex/internal/comment/internal/domain"
	"github.com/ecodeclub/netflex/internal/comment/internal/errs"
	"github.com/ecodeclub/netflex/internal/comment/internal/service"
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	perrs "github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.CommentService
	logger *elog.Component
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

// PublicRoutes 登录可选，登录后会带上当前用户的点赞状态
func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/api/comments")
	group.GET("", ginx.W(h.ListAll))
	group.GET("/video/:videoId", ginx.W(h.ListForVideo))
	group.GET("/user/:userId", ginx.W(h.ListForUser))
	group.GET("/:commentId", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/api/comments")
	group.POST("", ginx.BS[CreateReq](h.Create))
	group.DELETE("/:commentId", ginx.S(h.Delete))
	group.POST("/:commentId/like", ginx.S(h.Like))
	group.POST("/:commentId/dislike", ginx.S(h.Dislike))
	group.DELETE("/:commentId/rating", ginx.S(h.Unrate))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	actor := authz.FromSession(sess)
	if _, err := authz.RequireOwner(actor, req.UserID, "You can only comment with your own user ID"); err != nil {
		return webx.Fail(ctx, http.StatusForbidden, errs.ForbiddenError.Code, err)
	}
	var parentID int64
	if req.ParentCommentID != nil {
		parentID = *req.ParentCommentID
	}
	c, err := h.svc.AddComment(ctx, actor, domain.CreateComment{
		Content:  req.Content,
		VideoID:  req.VideoID,
		ParentID: parentID,
	})
	if err != nil {
		switch perrs.KindOf(err) {
		case perrs.Validation:
			return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
		case perrs.NotFound:
			return webx.Fail(ctx, http.StatusBadRequest, errs.NotFoundError.Code, err)
		default:
			h.logger.Error("发表评论失败", elog.FieldErr(err), elog.Int64("uid", actor.Uid))
			return webx.Fail(ctx, http.StatusBadRequest, errs.SystemError.Code, err)
		}
	}
	return webx.Write(ctx, http.StatusCreated, ginx.Result{
		Data: newComment(c),
	})
}

func (h *Handler) ListAll(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListAll(ctx, authz.Viewer(ctx))
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	return ginx.Result{
		Data: newComments(cs),
	}, nil
}

func (h *Handler) ListForVideo(ctx *ginx.Context) (ginx.Result, error) {
	vid, err := webx.ParamInt64(ctx, "videoId", "video ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	cs, err := h.svc.ListForVideo(ctx, vid, authz.Viewer(ctx))
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	return ginx.Result{
		Data: newComments(cs),
	}, nil
}

func (h *Handler) ListForUser(ctx *ginx.Context) (ginx.Result, error) {
	uid, err := webx.ParamInt64(ctx, "userId", "user ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	cs, err := h.svc.ListForUser(ctx, uid, authz.Viewer(ctx))
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	return ginx.Result{
		Data: newComments(cs),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "commentId", "comment ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	c, err := h.svc.GetByID(ctx, id, authz.Viewer(ctx))
	if err != nil {
		return h.fail(ctx, err, http.StatusInternalServerError)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "commentId", "comment ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	err = h.svc.DeleteComment(ctx, id, authz.FromSession(sess))
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	return ginx.Result{
		Msg: "Comment deleted successfully!",
	}, nil
}

func (h *Handler) Like(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.rate(ctx, sess, true)
}

func (h *Handler) Dislike(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.rate(ctx, sess, false)
}

func (h *Handler) rate(ctx *ginx.Context, sess session.Session, like bool) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "commentId", "comment ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	c, err := h.svc.RateComment(ctx, id, authz.FromSession(sess), like)
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Unrate(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "commentId", "comment ID")
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	c, err := h.svc.UnrateComment(ctx, id, authz.FromSession(sess))
	if err != nil {
		return h.fail(ctx, err, http.StatusBadRequest)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) fail(ctx *ginx.Context, err error, fallback int) (ginx.Result, error) {
	return fail(ctx, h.logger, err, fallback)
}

// fail 按错误类型决定状态码，未分类的错误使用 fallback
func fail(ctx *ginx.Context, logger *elog.Component, err error, fallback int) (ginx.Result, error) {
	switch perrs.KindOf(err) {
	case perrs.Forbidden:
		return webx.Fail(ctx, http.StatusForbidden, errs.ForbiddenError.Code, err)
	case perrs.NotFound:
		return webx.Fail(ctx, http.StatusNotFound, errs.NotFoundError.Code, err)
	case perrs.Validation:
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
	default:
		logger.Error("评论接口异常",
			elog.FieldErr(err),
			elog.String("path", ctx.Request.URL.Path))
		return webx.Fail(ctx, fallback, errs.SystemError.Code, err)
	}
}
