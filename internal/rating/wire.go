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

//go:build wireinject

package rating

import (
	"github.com/ecodeclub/netflex/internal/rating/internal/repository"
	"github.com/ecodeclub/netflex/internal/rating/internal/service"
	"github.com/ecodeclub/netflex/internal/rating/internal/web"
	"github.com/ecodeclub/netflex/internal/video"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewRatingRepository,
	service.NewRatingService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, videoModule *video.Module) *Module {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*video.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
