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
	MinRating = 1
	MaxRating = 5
)

// Rating 用户对视频的评分，一个用户对一个视频只有一个评分
type Rating struct {
	ID      int64
	Uid     int64
	VideoID int64
	Rating  int
	Utime   int64
}

func (r Rating) Valid() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}

type Summary struct {
	VideoID int64
	Average float64
	Count   int64
	// 查看者自己的评分，没有评过或者未登录为 0
	MyRating int
}
