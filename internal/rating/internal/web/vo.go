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

import "github.com/ecodeclub/netflex/internal/rating/internal/domain"

type RateReq struct {
	UserID  int64 `json:"userId"`
	VideoID int64 `json:"videoId"`
	Rating  int   `json:"rating"`
}

type Rating struct {
	UserID  int64 `json:"userId"`
	VideoID int64 `json:"videoId"`
	Rating  int   `json:"rating"`
}

func newRating(r domain.Rating) Rating {
	return Rating{
		UserID:  r.Uid,
		VideoID: r.VideoID,
		Rating:  r.Rating,
	}
}

type Summary struct {
	VideoID       int64   `json:"videoId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
	// 未登录或者没评过分为 0
	UserRating int `json:"userRating"`
}

func newSummary(s domain.Summary) Summary {
	return Summary{
		VideoID:       s.VideoID,
		AverageRating: s.Average,
		RatingCount:   s.Count,
		UserRating:    s.MyRating,
	}
}
