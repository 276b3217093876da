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

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		limit    int
		expected string
	}{
		{
			name:     "纯ASCII",
			content:  "Hello, World!",
			limit:    5,
			expected: "Hello",
		},
		{
			name:     "截断位置落在中文字符中间",
			content:  "你好，世界",
			limit:    7,
			expected: "你好",
		},
		{
			name:     "截断位置刚好在一个完整中文字符后",
			content:  "Go语言编程",
			limit:    8,
			expected: "Go语言",
		},
		{
			name:     "截断位置落在Emoji中间",
			content:  "Go语言很酷👍",
			limit:    16,
			expected: "Go语言很酷",
		},
		{
			name:     "越南语变音符号",
			content:  "Phim hay quá",
			limit:    12,
			expected: "Phim hay qu",
		},
		{
			name:     "长度小于限制",
			content:  "short string",
			limit:    20,
			expected: "short string",
		},
		{
			name:     "长度等于限制",
			content:  "exact length",
			limit:    12,
			expected: "exact length",
		},
		{
			name:     "限制为0",
			content:  "any string",
			limit:    0,
			expected: "",
		},
		{
			name:     "空字符串",
			content:  "",
			limit:    10,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncate(tc.content, tc.limit))
		})
	}
}

func TestTruncate_Panic(t *testing.T) {
	assert.Panics(t, func() {
		_ = truncate("this will panic", -1)
	}, "limit为负数应该引起panic")
}
