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
	"github.com/ecodeclub/netflex/internal/pkg/authz"
	perrs "github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/pkg/webx"
	"github.com/ecodeclub/netflex/internal/user/internal/domain"
	"github.com/ecodeclub/netflex/internal/user/internal/errs"
	"github.com/ecodeclub/netflex/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
	logger  *elog.Component
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/api/users")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/api/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.GET("/:userId", ginx.W(h.PublicProfile))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	u, err := h.userSvc.Signup(ctx, domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		switch perrs.KindOf(err) {
		case perrs.Validation:
			return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code, err)
		case perrs.Conflict:
			return webx.Fail(ctx, http.StatusConflict, errs.UserDuplicate.Code, err)
		default:
			h.logger.Error("注册失败", elog.FieldErr(err))
			return webx.Fail(ctx, http.StatusInternalServerError, errs.SystemError.Code, err)
		}
	}
	return ginx.Result{
		Data: newProfile(u, true),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if perrs.KindOf(err) == perrs.Unauthorized {
			return webx.Fail(ctx, http.StatusUnauthorized, errs.LoginFailed.Code, err)
		}
		h.logger.Error("登录失败", elog.FieldErr(err))
		return webx.Fail(ctx, http.StatusInternalServerError, errs.SystemError.Code, err)
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			authz.ClaimRole: u.Role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u, true),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return h.profileFailed(ctx, err)
	}
	return ginx.Result{
		Data: newProfile(u, true),
	}, nil
}

func (h *Handler) PublicProfile(ctx *ginx.Context) (ginx.Result, error) {
	uid, err := strconv.ParseInt(ctx.Context.Param("userId"), 10, 64)
	if err != nil {
		return webx.Fail(ctx, http.StatusBadRequest, errs.ValidationError.Code,
			perrs.New(perrs.Validation, "Invalid user ID"))
	}
	u, err := h.userSvc.Profile(ctx, uid)
	if err != nil {
		return h.profileFailed(ctx, err)
	}
	return ginx.Result{
		Data: newProfile(u, false),
	}, nil
}

func (h *Handler) profileFailed(ctx *ginx.Context, err error) (ginx.Result, error) {
	if perrs.KindOf(err) == perrs.NotFound {
		return webx.Fail(ctx, http.StatusNotFound, errs.UserNotFoundError.Code, err)
	}
	h.logger.Error("查询用户失败", elog.FieldErr(err))
	return webx.Fail(ctx, http.StatusInternalServerError, errs.SystemError.Code, err)
}
