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

package webx

import (
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/netflex/internal/pkg/errs"
)

// Write 以指定的状态码写回结果，返回 ginx.ErrNoResponse 让 ginx 不再处理
func Write(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.PureJSON(status, res)
	return res, ginx.ErrNoResponse
}

// Fail 统一的错误文案 "Error: <原因>"
func Fail(ctx *ginx.Context, status, code int, err error) (ginx.Result, error) {
	return Write(ctx, status, ginx.Result{
		Code: code,
		Msg:  "Error: " + errs.Message(err),
	})
}

// ParamInt64 读取路径参数，格式不对返回 errs.Validation
func ParamInt64(ctx *ginx.Context, key, name string) (int64, error) {
	val, err := strconv.ParseInt(ctx.Context.Param(key), 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.Validation, err, "Invalid "+name)
	}
	return val, nil
}
