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

type Video struct {
	ID          int64
	Title       string
	Description string
	Category    string
	// UploaderID 上传者，删除评论时上传者也有权限
	UploaderID int64
	ViewCount  int64
	// Ctime 上传时间
	Ctime int64
}
