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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
	_ "github.com/ecodeclub/netflex/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireOwner(t *testing.T) {
	testCases := []struct {
		name    string
		id      Identity
		claimed int64
		wantUid int64
		wantErr bool
	}{
		{
			name:    "没有声明",
			id:      Identity{Uid: 1},
			wantUid: 1,
		},
		{
			name:    "声明与登录一致",
			id:      Identity{Uid: 1},
			claimed: 1,
			wantUid: 1,
		},
		{
			name:    "声明与登录不一致",
			id:      Identity{Uid: 1},
			claimed: 2,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uid, err := RequireOwner(tc.id, tc.claimed, "You can only rate videos with your own user ID")
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, errs.Forbidden, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUid, uid)
		})
	}
}

func TestCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		sess     session.Session
		wantOK   bool
		wantId   Identity
		wantView int64
	}{
		{
			name:   "未登录",
			wantOK: false,
		},
		{
			name: "普通用户",
			sess: session.NewMemorySession(session.Claims{
				Uid: 3,
			}),
			wantOK:   true,
			wantId:   Identity{Uid: 3, Role: RoleUser},
			wantView: 3,
		},
		{
			name: "管理员",
			sess: session.NewMemorySession(session.Claims{
				Uid:  7,
				Data: map[string]string{ClaimRole: RoleAdmin},
			}),
			wantOK:   true,
			wantId:   Identity{Uid: 7, Role: RoleAdmin},
			wantView: 7,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tc.sess != nil {
				c.Set("_session", tc.sess)
			}
			ctx := &ginx.Context{Context: c}
			id, ok := Current(ctx)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantId, id)
			assert.Equal(t, tc.wantView, Viewer(ctx))
			assert.Equal(t, tc.wantId.Role == RoleAdmin, id.IsAdmin())
		})
	}
}
