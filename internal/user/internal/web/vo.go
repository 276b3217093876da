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

import "github.com/ecodeclub/netflex/internal/user/internal/domain"

type SignupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatarUrl"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Profile struct {
	Id       int64  `json:"id"`
	SN       string `json:"sn"`
	Username string `json:"username"`
	// Email 只返回给本人
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatarUrl"`
	Role   string `json:"role"`
}

func newProfile(u domain.User, self bool) Profile {
	p := Profile{
		Id:       u.Id,
		SN:       u.SN,
		Username: u.Username,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
	if self {
		p.Email = u.Email
	}
	return p
}
