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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/user/internal/domain"
	"github.com/ecodeclub/netflex/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Signup 注册，返回的用户不包含密码
	Signup(ctx context.Context, u domain.User) (domain.User, error)
	// Login 用户名密码登录，角色以配置的管理员名单为准
	Login(ctx context.Context, username, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 找不到的用户会被忽略
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	admins []string
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository, admins []string) UserService {
	return &userService{
		repo:   repo,
		admins: admins,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Signup(ctx context.Context, u domain.User) (domain.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	if u.Username == "" || u.Email == "" {
		return domain.User{}, errs.New(errs.Validation, "Username and email are required")
	}
	if len(u.Password) < minPasswordLen {
		return domain.User{}, errs.Newf(errs.Validation, "Password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, errs.Wrap(errs.Unknown, err, "加密密码失败")
	}
	u.Password = string(hash)
	u.SN = shortuuid.New()
	u.Role = svc.roleOf(u.Username)
	id, err := svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		return domain.User{}, errs.New(errs.Conflict, "Username or email is already taken")
	}
	if err != nil {
		return domain.User{}, errs.Wrap(errs.Unknown, err, "注册用户失败")
	}
	u.Id = id
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, username, password string) (domain.User, error) {
	u, err := svc.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, errs.New(errs.Unauthorized, "Invalid username or password")
	}
	if err != nil {
		return domain.User{}, errs.Wrap(errs.Unknown, err, "查询用户失败")
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		svc.logger.Debug("密码错误", elog.String("username", username))
		return domain.User{}, errs.New(errs.Unauthorized, "Invalid username or password")
	}
	// 管理员名单可能在注册之后才调整
	if r := svc.roleOf(u.Username); r == domain.RoleAdmin {
		u.Role = r
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, errs.Newf(errs.NotFound, "User not found with ID: %d", id)
	}
	if err != nil {
		return domain.User{}, errs.Wrap(errs.Unknown, err, "查询用户失败")
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(errs.Unknown, err, "批量查询用户失败")
	}
	return slice.Map(us, func(_ int, src domain.User) domain.User {
		src.Password = ""
		return src
	}), nil
}

func (svc *userService) roleOf(username string) string {
	if slice.Contains(svc.admins, username) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}
