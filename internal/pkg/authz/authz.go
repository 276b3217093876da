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

package authz

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
)

const (
	ClaimRole = "role"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity 当前请求的调用者，在 web 层解析一次，之后作为参数传给 service
type Identity struct {
	Uid  int64
	Role string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func FromSession(sess session.Session) Identity {
	claims := sess.Claims()
	return Identity{
		Uid:  claims.Uid,
		Role: claims.Get(ClaimRole).StringOrDefault(RoleUser),
	}
}

// Current 用于可选登录的接口，没有登录返回 false
func Current(ctx *ginx.Context) (Identity, bool) {
	sess, err := session.Get(ctx)
	if err != nil || sess == nil {
		return Identity{}, false
	}
	return FromSession(sess), true
}

// Viewer 返回当前用户 ID，未登录为 0
func Viewer(ctx *ginx.Context) int64 {
	id, ok := Current(ctx)
	if !ok {
		return 0
	}
	return id.Uid
}

// RequireOwner 请求里声明的 uid 必须和登录用户一致，没有声明则视为当前用户
func RequireOwner(id Identity, claimed int64, msg string) (int64, error) {
	if claimed != 0 && claimed != id.Uid {
		return 0, errs.New(errs.Forbidden, msg)
	}
	return id.Uid, nil
}
