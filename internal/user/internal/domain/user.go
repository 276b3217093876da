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

package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id int64
	// SN 对外暴露的短 ID
	SN       string
	Username string
	Email    string
	// Password 加密后的密码，不会返回给前端
	Password string
	Avatar   string
	Role     string
	Ctime    int64
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
