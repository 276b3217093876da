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
	"testing"

	"github.com/ecodeclub/netflex/internal/pkg/errs"
	"github.com/ecodeclub/netflex/internal/user/internal/domain"
	"github.com/ecodeclub/netflex/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/netflex/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Signup(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		user     domain.User
		wantKind errs.Kind
		wantErr  bool
		wantUser domain.User
	}{
		{
			name: "用户名为空",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			user:     domain.User{Email: "a@b.com", Password: "123456"},
			wantErr:  true,
			wantKind: errs.Validation,
		},
		{
			name: "密码太短",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			user:     domain.User{Username: "alice", Email: "a@b.com", Password: "123"},
			wantErr:  true,
			wantKind: errs.Validation,
		},
		{
			name: "重复注册",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrUserDuplicate)
				return repo
			},
			user:     domain.User{Username: "alice", Email: "a@b.com", Password: "123456"},
			wantErr:  true,
			wantKind: errs.Conflict,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
				return repo
			},
			user:     domain.User{Username: "alice", Email: "a@b.com", Password: "123456"},
			wantErr:  true,
			wantKind: errs.Unknown,
		},
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
						assert.NotEmpty(t, u.SN)
						assert.Equal(t, domain.RoleUser, u.Role)
						return 1, nil
					})
				return repo
			},
			user: domain.User{Username: " alice ", Email: "a@b.com", Password: "123456"},
			wantUser: domain.User{
				Id:       1,
				Username: "alice",
				Email:    "a@b.com",
				Role:     domain.RoleUser,
			},
		},
		{
			name: "管理员注册",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				return repo
			},
			user: domain.User{Username: "root", Email: "root@b.com", Password: "123456"},
			wantUser: domain.User{
				Id:       2,
				Username: "root",
				Email:    "root@b.com",
				Role:     domain.RoleAdmin,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), []string{"root"})
			u, err := svc.Signup(context.Background(), tc.user)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, u.SN)
			u.SN = ""
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{Id: 1, Username: "alice", Password: string(hash), Role: domain.RoleUser}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		username string
		password string
		admins   []string
		wantKind errs.Kind
		wantErr  bool
		wantRole string
	}{
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			username: "bob",
			password: "123456",
			wantErr:  true,
			wantKind: errs.Unauthorized,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				return repo
			},
			username: "alice",
			password: "654321",
			wantErr:  true,
			wantKind: errs.Unauthorized,
		},
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				return repo
			},
			username: "alice",
			password: "123456",
			wantRole: domain.RoleUser,
		},
		{
			name: "注册后被加入管理员名单",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				return repo
			},
			username: "alice",
			password: "123456",
			admins:   []string{"alice"},
			wantRole: domain.RoleAdmin,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), tc.admins)
			u, err := svc.Login(context.Background(), tc.username, tc.password)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, u.Role)
			assert.Empty(t, u.Password)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(404)).Return(domain.User{}, repository.ErrUserNotFound)
	repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.User{Id: 1, Username: "alice", Password: "hash"}, nil)
	svc := NewUserService(repo, nil)

	_, err := svc.Profile(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
	assert.Equal(t, "User not found with ID: 404", errs.Message(err))

	u, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.User{Id: 1, Username: "alice"}, u)
}

func TestUserService_BatchProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByIds(gomock.Any(), []int64{1, 2}).Return([]domain.User{
		{Id: 1, Username: "alice", Password: "hash"},
		{Id: 2, Username: "bob", Password: "hash"},
	}, nil)
	svc := NewUserService(repo, nil)

	us, err := svc.BatchProfile(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, us)

	us, err = svc.BatchProfile(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{Id: 1, Username: "alice"}, {Id: 2, Username: "bob"}}, us)
}
